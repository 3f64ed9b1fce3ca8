package config

import (
	"fmt"
	"os"
	"time"
)

// Значения по умолчанию. Порог detail-обогащения — id активности, начиная
// с которого в аккаунте появилась расширенная телеметрия (сплиты, зоны);
// для более старых записей detail вызовы бесполезны.
const (
	DefaultAuthURL = "https://www.strava.com/oauth/token"
	DefaultAPIURL  = "https://www.strava.com/api/v3"
	DefaultLogPath = "entrenamientos_contexto.txt"
	DefaultDBPath  = "stravasync.db"

	DefaultDetailThreshold int64 = 9_000_000_000
	DefaultCallBudget            = 90
	DefaultThrottle              = 500 * time.Millisecond
)

// Имена переменных окружения с учетными данными приложения
const (
	EnvClientID     = "STRAVA_CLIENT_ID"
	EnvClientSecret = "STRAVA_CLIENT_SECRET"
	EnvRefreshToken = "STRAVA_REFRESH_TOKEN"
)

// Config собирает настройки одного запуска: учетные данные из окружения
// плюс значения флагов командной строки.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string // опционально: cache в BoltDB имеет приоритет

	AuthURL string
	APIURL  string
	LogPath string
	DBPath  string

	// Типы активностей, которые никогда не попадают в лог
	ExcludedSportTypes []string

	// Активности с id >= порога получают detail/zones обогащение
	DetailThreshold int64

	// Жесткий потолок исходящих запросов за один запуск
	CallBudget int

	// Пауза между последовательными enrichment вызовами
	Throttle time.Duration
}

// New возвращает конфигурацию с дефолтами и учетными данными из окружения
func New() *Config {
	return &Config{
		ClientID:           os.Getenv(EnvClientID),
		ClientSecret:       os.Getenv(EnvClientSecret),
		RefreshToken:       os.Getenv(EnvRefreshToken),
		AuthURL:            DefaultAuthURL,
		APIURL:             DefaultAPIURL,
		LogPath:            DefaultLogPath,
		DBPath:             DefaultDBPath,
		ExcludedSportTypes: []string{"WeightTraining"},
		DetailThreshold:    DefaultDetailThreshold,
		CallBudget:         DefaultCallBudget,
		Throttle:           DefaultThrottle,
	}
}

// Validate проверяет, что учетных данных достаточно для запуска sync.
// Отсутствие credentials — фатальная ошибка старта, до каких-либо
// обращений к хранилищу (refresh token может прийти из token cache,
// поэтому здесь не обязателен).
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("missing credentials: %s is not set", EnvClientID)
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("missing credentials: %s is not set", EnvClientSecret)
	}
	if c.CallBudget <= 0 {
		return fmt.Errorf("call budget must be positive, got %d", c.CallBudget)
	}
	return nil
}

// IsExcluded проверяет, исключен ли тип активности из лога
func (c *Config) IsExcluded(sportType string) bool {
	for _, t := range c.ExcludedSportTypes {
		if t == sportType {
			return true
		}
	}
	return false
}
