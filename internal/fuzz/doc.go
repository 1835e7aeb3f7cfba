// Package fuzztests houses Go fuzz harnesses for the Selawik front end
// (source -> lexer -> parser). They guard against panics, hangs and broken
// span invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер и парсер и
// проверять инварианты через internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/syntax, internal/driver,
// internal/testkit.
package fuzztests
