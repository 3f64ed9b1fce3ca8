// Package sync реализует merge engine: сверку свежевыгруженных
// активностей с текстовым логом и его идемпотентную перезапись.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/stravasync/internal/client/api"
	"github.com/iudanet/stravasync/internal/config"
	"github.com/iudanet/stravasync/internal/logbook"
	"github.com/iudanet/stravasync/internal/models"
	"github.com/iudanet/stravasync/pkg/api"
)

// Размер страницы list endpoint'а: маленький для обычного запуска
// (последние тренировки), большой для выгрузки всей истории.
const (
	perPageRecent = 10
	perPageFull   = 100
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс merge engine
type Service interface {
	// Sync выполняет один цикл: выгрузка активностей, сверка с логом,
	// перезапись лога при изменениях. allHistory включает постраничную
	// выгрузку всей истории вместо последней пачки.
	Sync(ctx context.Context, accessToken string, allHistory bool) (*SyncResult, error)
}

type service struct {
	apiClient httpClient.ClientAPI
	cfg       *config.Config
	formatter *logbook.Formatter
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, cfg *config.Config, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		cfg:       cfg,
		formatter: &logbook.Formatter{DetailThreshold: cfg.DetailThreshold},
		logger:    logger,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	SessionID    string
	Fetched      int  // выгружено активностей из API
	Excluded     int  // отфильтровано по типу
	NewEntries   int  // добавлено записей
	Updated      int  // перезаписано изменившихся записей
	Unchanged    int  // записи без изменений
	Enriched     int  // успешных enrichment вызовов
	CallsUsed    int  // потреблено из бюджета
	StoppedEarly bool // бюджет исчерпан до конца пачки
	Changed      bool // лог был переписан
}

// Sync performs one fetch-merge-write cycle.
//  1. Читает и парсит существующий лог (ошибка чтения = первый запуск)
//  2. Выгружает активности, newest first, в рамках бюджета сессии
//  3. Сверяет каждую с логом: новые добавляет, изменившиеся заменяет
//  4. Переписывает лог атомарно — только если что-то изменилось
func (s *service) Sync(ctx context.Context, accessToken string, allHistory bool) (*SyncResult, error) {
	sess := NewSession(s.cfg.CallBudget, s.cfg.Throttle)
	logger := s.logger.With("session_id", sess.ID)

	logger.Info("Starting synchronization", "all_history", allHistory, "call_budget", s.cfg.CallBudget)

	result := &SyncResult{SessionID: sess.ID}

	// Читаем существующий лог. Ошибка чтения не фатальна: merge идет
	// как первый запуск, с пустым логом.
	log, err := logbook.Load(s.cfg.LogPath)
	if err != nil {
		logger.Warn("Failed to read existing log, treating as first run",
			"path", s.cfg.LogPath, "error", err)
	}
	logger.Info("Loaded existing log", "entries", log.Len())

	// Выгружаем активности
	fresh := s.fetchActivities(ctx, accessToken, allHistory, sess, logger)
	result.Fetched = len(fresh)
	logger.Info("Fetched activities", "count", len(fresh))

	// Сверяем с логом
	s.merge(ctx, accessToken, log, fresh, sess, logger, result)
	result.CallsUsed = sess.Used()

	if !result.Changed {
		logger.Info("No changes detected, skipping write",
			"unchanged", result.Unchanged, "calls_used", result.CallsUsed)
		return result, nil
	}

	// Переписываем лог целиком. При ошибке на диске остается прежняя
	// версия — наработанное в памяти теряется, но лог не портится.
	if err := logbook.Write(s.cfg.LogPath, log); err != nil {
		return nil, fmt.Errorf("failed to write log: %w", err)
	}

	logger.Info("Synchronization completed",
		"new", result.NewEntries,
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"excluded", result.Excluded,
		"calls_used", result.CallsUsed,
		"stopped_early", result.StoppedEarly)

	return result, nil
}

// fetchActivities выгружает активности list endpoint'ом, newest first.
// Ошибка страницы обрывает пагинацию, но уже выгруженные страницы
// сохраняются — запуск продолжается с частичной пачкой.
func (s *service) fetchActivities(ctx context.Context, accessToken string, allHistory bool, sess *Session, logger *slog.Logger) []api.SummaryActivity {
	perPage := perPageRecent
	if allHistory {
		perPage = perPageFull
	}

	var all []api.SummaryActivity
	for page := 1; ; page++ {
		if !sess.Take() {
			logger.Warn("Call budget exhausted during pagination", "pages_fetched", page-1)
			break
		}

		batch, err := s.apiClient.ListActivities(ctx, accessToken, page, perPage)
		if err != nil {
			logger.Error("Page fetch failed, continuing with partial set",
				"page", page, "error", err)
			break
		}

		all = append(all, batch...)

		// Обычный запуск — одна страница; полная история — до пустой
		if !allHistory || len(batch) == 0 {
			break
		}
	}
	return all
}

// merge сверяет свежую пачку с логом. API отдает newest first, пачка
// обрабатывается в обратном порядке (oldest first): несколько новых
// записей одного запуска ложатся консистентно еще до финальной
// сортировки. Каждая запись перед форматированием обогащается detail
// данными — и новая, и существующая: поля, дозаполненные пользователем
// позже (например RPE), должны быть замечены как обновление.
func (s *service) merge(ctx context.Context, accessToken string, log *logbook.Log, fresh []api.SummaryActivity, sess *Session, logger *slog.Logger, result *SyncResult) {
	for i := len(fresh) - 1; i >= 0; i-- {
		summary := fresh[i]

		activity := models.FromSummary(summary)
		if s.cfg.IsExcluded(activity.SportType) {
			result.Excluded++
			logger.Debug("Skipping excluded activity",
				"id", activity.ID, "sport_type", activity.SportType)
			continue
		}

		// Detail обогащение: perceived exertion, сплиты
		if !sess.Take() {
			logger.Warn("Call budget exhausted, stopping merge early",
				"processed", result.NewEntries+result.Updated+result.Unchanged)
			result.StoppedEarly = true
			break
		}
		detail, err := s.apiClient.GetActivity(ctx, accessToken, activity.ID)
		if err != nil {
			// Запись мержится по summary полям
			logger.Warn("Detail fetch failed, using summary fields only",
				"id", activity.ID, "error", err)
		} else {
			activity.ApplyDetail(detail)
			result.Enriched++
		}
		sess.Throttle()

		// Зоны — только для активностей с расширенной телеметрией
		if activity.ID >= s.cfg.DetailThreshold {
			if !sess.Take() {
				logger.Warn("Call budget exhausted before zones fetch", "id", activity.ID)
				result.StoppedEarly = true
				s.reconcile(log, activity, logger, result)
				break
			}
			zones, err := s.apiClient.GetActivityZones(ctx, accessToken, activity.ID)
			if err != nil {
				logger.Warn("Zones fetch failed, merging without zones",
					"id", activity.ID, "error", err)
			} else if len(zones) > 0 {
				activity.ApplyZones(zones)
				result.Enriched++
			}
			sess.Throttle()
		}

		s.reconcile(log, activity, logger, result)
	}
}

// reconcile кладет отформатированную запись в лог: новая — вставка,
// существующая — замена только при байтовом отличии текста
func (s *service) reconcile(log *logbook.Log, activity *models.Activity, logger *slog.Logger, result *SyncResult) {
	text := s.formatter.Format(activity)

	stored, exists := log.Get(activity.ID)
	switch {
	case !exists:
		log.Set(activity.ID, text)
		result.NewEntries++
		result.Changed = true
		logger.Info("Added activity", "id", activity.ID, "sport_type", activity.SportType)
	case stored != text:
		log.Set(activity.ID, text)
		result.Updated++
		result.Changed = true
		logger.Info("Updated activity", "id", activity.ID)
	default:
		result.Unchanged++
	}
}
