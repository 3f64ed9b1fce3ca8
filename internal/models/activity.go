package models

import (
	"strconv"

	"github.com/iudanet/stravasync/pkg/api"
)

// Беговые типы активностей: Strava отдает каденс одной ноги,
// для них при отображении каденс удваивается до полных шагов в минуту.
var runningSportTypes = map[string]bool{
	"Run":        true,
	"TrailRun":   true,
	"VirtualRun": true,
}

// Activity представляет одну активность в том виде, с которым работает
// merge engine: summary поля, плюс данные обогащения (detail + zones),
// если они были получены.
type Activity struct {
	Name              string
	SportType         string
	StartDateLocal    string // как отдает API: "2006-01-02T15:04:05Z"
	Splits            []Split
	Zones             []ZoneSet
	AverageCadence    *float64
	AverageHeartrate  *float64
	PerceivedExertion *float64
	ID                int64
	DistanceMeters    float64
	MovingTimeSec     int
	ElevationGainM    float64
}

// Split представляет один километровый сплит
type Split struct {
	AverageHeartrate *float64
	Index            int
	DistanceMeters   float64
	MovingTimeSec    int
	ElevationDiffM   float64
}

// ZoneSet представляет гистограмму времени по зонам одного типа
type ZoneSet struct {
	Type    string // "heartrate" или "pace"
	Buckets []ZoneBucket
}

// ZoneBucket представляет одну корзину гистограммы.
// OpenTop == true для верхней корзины без ограничения сверху.
type ZoneBucket struct {
	Min     float64
	Max     float64
	TimeSec int
	OpenTop bool
}

// IDString возвращает идентификатор в виде строки — в таком виде он
// хранится в маркерах текстового лога.
func (a *Activity) IDString() string {
	return strconv.FormatInt(a.ID, 10)
}

// IsRunning проверяет, является ли активность беговой
func (a *Activity) IsRunning() bool {
	return runningSportTypes[a.SportType]
}

// FromSummary конвертирует summary активность из API в доменную модель.
// Устаревшее поле Type используется как fallback, если sport_type пуст.
func FromSummary(s api.SummaryActivity) *Activity {
	sportType := s.SportType
	if sportType == "" {
		sportType = s.Type
	}
	return &Activity{
		ID:               s.ID,
		Name:             s.Name,
		SportType:        sportType,
		StartDateLocal:   s.StartDateLocal,
		DistanceMeters:   s.Distance,
		MovingTimeSec:    s.MovingTime,
		ElevationGainM:   s.TotalElevationGain,
		AverageCadence:   s.AverageCadence,
		AverageHeartrate: s.AverageHeartrate,
	}
}

// ApplyDetail добавляет в активность поля из detail endpoint'а.
// Summary поля не перезаписываются: list и detail отдают одинаковые
// значения, а частично заполненный detail не должен затирать данные.
func (a *Activity) ApplyDetail(d *api.DetailedActivity) {
	if d == nil {
		return
	}
	if d.PerceivedExertion != nil {
		a.PerceivedExertion = d.PerceivedExertion
	}
	if len(d.SplitsMetric) > 0 {
		splits := make([]Split, 0, len(d.SplitsMetric))
		for _, s := range d.SplitsMetric {
			splits = append(splits, Split{
				Index:            s.Split,
				DistanceMeters:   s.Distance,
				MovingTimeSec:    s.MovingTime,
				ElevationDiffM:   s.ElevationDifference,
				AverageHeartrate: s.AverageHeartrate,
			})
		}
		a.Splits = splits
	}
}

// ApplyZones добавляет в активность гистограммы зон.
// Корзина с Max < 0 — открытая сверху (API кодирует это как -1).
func (a *Activity) ApplyZones(zones []api.ActivityZone) {
	if len(zones) == 0 {
		return
	}
	sets := make([]ZoneSet, 0, len(zones))
	for _, z := range zones {
		set := ZoneSet{Type: z.Type, Buckets: make([]ZoneBucket, 0, len(z.DistributionBuckets))}
		for _, b := range z.DistributionBuckets {
			set.Buckets = append(set.Buckets, ZoneBucket{
				Min:     b.Min,
				Max:     b.Max,
				TimeSec: b.Time,
				OpenTop: b.Max < 0,
			})
		}
		sets = append(sets, set)
	}
	a.Zones = sets
}
