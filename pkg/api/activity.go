package api

// SummaryActivity представляет одну активность из paginated list endpoint'а.
// Опциональные поля (каденс, пульс) — указатели: отсутствие поля в JSON
// отличимо от нулевого значения.
type SummaryActivity struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	SportType         string   `json:"sport_type"`
	Type              string   `json:"type"` // устаревшее поле, fallback для sport_type
	StartDateLocal    string   `json:"start_date_local"`
	Distance          float64  `json:"distance"`    // метры
	MovingTime        int      `json:"moving_time"` // секунды
	ElapsedTime       int      `json:"elapsed_time"`
	TotalElevationGain float64 `json:"total_elevation_gain"` // метры
	AverageCadence    *float64 `json:"average_cadence,omitempty"`
	AverageHeartrate  *float64 `json:"average_heartrate,omitempty"`
}

// DetailedActivity представляет ответ detail endpoint'а: summary поля плюс
// данные, которых нет в списке (воспринимаемая нагрузка, сплиты по километрам).
type DetailedActivity struct {
	SummaryActivity
	PerceivedExertion *float64      `json:"perceived_exertion,omitempty"`
	SplitsMetric      []SplitMetric `json:"splits_metric,omitempty"`
}

// SplitMetric представляет один километровый сплит активности
type SplitMetric struct {
	Split               int      `json:"split"` // порядковый номер, с 1
	Distance            float64  `json:"distance"`
	MovingTime          int      `json:"moving_time"`
	ElevationDifference float64  `json:"elevation_difference"` // со знаком
	AverageHeartrate    *float64 `json:"average_heartrate,omitempty"`
}

// ActivityZone представляет гистограмму времени по зонам одного типа
// ("heartrate" или "pace"). Endpoint возвращает массив таких гистограмм.
type ActivityZone struct {
	Type                string       `json:"type"`
	DistributionBuckets []ZoneBucket `json:"distribution_buckets"`
}

// ZoneBucket представляет одну корзину гистограммы. Для верхней открытой
// корзины Max == -1.
type ZoneBucket struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Time int     `json:"time"` // секунды в зоне
}
