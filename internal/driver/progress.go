package driver

// Stage is where a file is in ParseAll.
type Stage uint8

const (
	StageQueued Stage = iota
	StageRead
	StageParse
	StageDone
	StageError
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageRead:
		return "reading"
	case StageParse:
		return "parsing"
	case StageDone:
		return "done"
	case StageError:
		return "error"
	default:
		return "unknown"
	}
}

// Event reports a stage change of one file. Diagnostics is set on StageDone.
type Event struct {
	File        string
	Stage       Stage
	Diagnostics int
	Err         error
}

func (d *Driver) notify(ev Event) {
	if d.Progress != nil {
		d.Progress(ev)
	}
}
