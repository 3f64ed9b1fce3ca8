package sync

import (
	"time"

	"github.com/google/uuid"
)

// Session представляет состояние одного запуска синхронизации: бюджет
// исходящих вызовов и троттлинг между enrichment запросами. Явный объект
// вместо глобального счетчика: создается на запуск, умирает с ним.
type Session struct {
	// ID попадает во все slog строки запуска
	ID       string
	throttle time.Duration
	budget   int
	used     int
}

// NewSession создает сессию с заданным потолком вызовов.
// throttle — пауза между последовательными enrichment вызовами
// (самоограничение против rate limit'а API, в тестах ноль).
func NewSession(budget int, throttle time.Duration) *Session {
	return &Session{
		ID:       uuid.NewString(),
		budget:   budget,
		throttle: throttle,
	}
}

// Take потребляет один вызов из бюджета. false — бюджет исчерпан,
// вызов делать нельзя.
func (s *Session) Take() bool {
	if s.used >= s.budget {
		return false
	}
	s.used++
	return true
}

// Used возвращает количество потребленных вызовов
func (s *Session) Used() int {
	return s.used
}

// Remaining возвращает остаток бюджета
func (s *Session) Remaining() int {
	return s.budget - s.used
}

// Throttle выдерживает паузу перед следующим вызовом
func (s *Session) Throttle() {
	if s.throttle > 0 {
		time.Sleep(s.throttle)
	}
}
