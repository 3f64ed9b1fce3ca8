// Package logbook реализует текстовый лог активностей: маркерный формат
// хранения, парсинг, форматирование записей и атомарную запись.
//
// Формат файла — совместимая поверхность, менять нельзя: произвольный
// header, затем для каждой активности маркерная строка
// "<!-- ID: <digits> -->", текст описания и пустая строка.
package logbook

import (
	"fmt"
	"sort"
	"strings"
)

// Entry представляет одну запись лога: идентификатор активности
// и ее отформатированное описание.
type Entry struct {
	Text string
	ID   int64
}

// Log представляет распарсенный лог: header (сохраняется байт-в-байт,
// системой не интерпретируется) и записи по идентификатору активности.
type Log struct {
	Entries map[int64]string
	Header  string
}

// NewLog возвращает пустой лог
func NewLog() *Log {
	return &Log{Entries: make(map[int64]string)}
}

// Get возвращает сохраненный текст записи
func (l *Log) Get(id int64) (string, bool) {
	text, ok := l.Entries[id]
	return text, ok
}

// Set сохраняет или заменяет текст записи
func (l *Log) Set(id int64, text string) {
	l.Entries[id] = text
}

// Len возвращает количество записей
func (l *Log) Len() int {
	return len(l.Entries)
}

// Sorted возвращает записи, отсортированные по id по убыванию:
// после каждой перезаписи лог хранится newest-first.
func (l *Log) Sorted() []Entry {
	entries := make([]Entry, 0, len(l.Entries))
	for id, text := range l.Entries {
		entries = append(entries, Entry{ID: id, Text: text})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	return entries
}

// Render сериализует лог в маркерный текстовый формат: header как есть,
// затем записи в порядке убывания id.
func (l *Log) Render() string {
	var b strings.Builder
	b.WriteString(l.Header)
	for _, e := range l.Sorted() {
		fmt.Fprintf(&b, "<!-- ID: %d -->\n%s\n\n", e.ID, e.Text)
	}
	return b.String()
}
