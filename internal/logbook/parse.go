package logbook

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Маркер перед каждой записью. Допускаем лишние пробелы внутри маркера,
// но сам маркер должен начинать строку.
var markerRe = regexp.MustCompile(`(?m)^<!--\s*ID:\s*(\d+)\s*-->[^\S\n]*\n?`)

// Parse разбирает текст лога на header и записи. Все до первого маркера —
// header, он сохраняется байт-в-байт. Текст между маркером и следующим
// маркером — описание записи, обрезанное от окружающих пробелов.
// Порядок записей в файле не важен: при записи лог все равно сортируется.
func Parse(raw string) *Log {
	log := NewLog()

	matches := markerRe.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		log.Header = raw
		return log
	}

	log.Header = raw[:matches[0][0]]

	for i, m := range matches {
		id, err := strconv.ParseInt(raw[m[2]:m[3]], 10, 64)
		if err != nil {
			// \d+ гарантирует цифры; сюда можно попасть только при переполнении
			continue
		}

		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		log.Set(id, strings.TrimSpace(raw[m[1]:end]))
	}

	return log
}

// Load читает и разбирает лог с диска. Отсутствующий файл — штатная
// ситуация первого запуска: возвращается пустой лог без ошибки. Любая
// другая ошибка чтения тоже дает пустой лог (merge пойдет как первый
// запуск), но ошибка возвращается, чтобы вызывающий мог ее залогировать.
func Load(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewLog(), nil
		}
		return NewLog(), err
	}
	return Parse(string(data)), nil
}
