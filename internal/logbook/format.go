package logbook

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/iudanet/stravasync/internal/models"
)

// PaceNotApplicable выводится вместо темпа для активностей с нулевой
// дистанцией (тренажер, каток и т.п.)
const PaceNotApplicable = "N/A"

// Formatter превращает одну активность в детерминированный текстовый блок.
// Чистая функция: отсутствующие поля деградируют до дефолтов, ошибок нет.
type Formatter struct {
	// Активности с id ниже порога никогда не получают блок
	// сплитов и зон, даже если данные есть
	DetailThreshold int64
}

// Format рендерит описание активности. Один и тот же вход всегда дает
// байт-в-байт одинаковый результат — на этом стоит детект изменений
// в merge engine.
func (f *Formatter) Format(a *models.Activity) string {
	var b strings.Builder

	distanceKm := a.DistanceMeters / 1000

	fmt.Fprintf(&b, "On %s I did a %s of %.1fkm in %s with %.0fm of elevation gain. My average pace was %s min/km.",
		formatDate(a.StartDateLocal),
		sportTypeOrDefault(a.SportType),
		distanceKm,
		formatDuration(a.MovingTimeSec),
		a.ElevationGainM,
		FormatPace(a.MovingTimeSec, distanceKm),
	)

	if a.AverageCadence != nil {
		cadence := *a.AverageCadence
		unit := "rpm"
		if a.IsRunning() {
			// API отдает каденс одной ноги — удваиваем до полных шагов
			cadence *= 2
			unit = "steps/min"
		}
		fmt.Fprintf(&b, " Average cadence: %.0f %s.", cadence, unit)
	}

	if a.AverageHeartrate != nil {
		fmt.Fprintf(&b, " Average heart rate: %.0f bpm.", *a.AverageHeartrate)
	}

	if a.PerceivedExertion != nil {
		fmt.Fprintf(&b, " Perceived exertion: %s (%.0f/10).",
			ExertionLabel(*a.PerceivedExertion), *a.PerceivedExertion)
	}

	if a.ID >= f.DetailThreshold {
		f.writeSplits(&b, a)
		f.writeZones(&b, a)
	}

	return b.String()
}

// writeSplits добавляет километровую раскладку
func (f *Formatter) writeSplits(b *strings.Builder, a *models.Activity) {
	if len(a.Splits) == 0 {
		return
	}
	b.WriteString("\nSplits:")
	for _, s := range a.Splits {
		fmt.Fprintf(b, "\n  km %d: %s min/km", s.Index, FormatPace(s.MovingTimeSec, s.DistanceMeters/1000))
		if s.AverageHeartrate != nil {
			fmt.Fprintf(b, ", %.0f bpm", *s.AverageHeartrate)
		}
		fmt.Fprintf(b, ", %+dm", int(math.Round(s.ElevationDiffM)))
	}
}

// writeZones добавляет гистограммы времени по зонам. Корзины с нулевым
// временем опускаются; гистограмма с нулевым суммарным временем
// пропускается целиком.
func (f *Formatter) writeZones(b *strings.Builder, a *models.Activity) {
	for _, set := range a.Zones {
		total := 0
		for _, bucket := range set.Buckets {
			total += bucket.TimeSec
		}
		if total == 0 {
			continue
		}

		fmt.Fprintf(b, "\n%s:", zoneTitle(set.Type))
		for i, bucket := range set.Buckets {
			if bucket.TimeSec == 0 {
				continue
			}
			fmt.Fprintf(b, "\n  Z%d (%s): %s (%.1f%%)",
				i+1,
				formatZoneRange(bucket),
				formatZoneTime(bucket.TimeSec),
				float64(bucket.TimeSec)/float64(total)*100,
			)
		}
	}
}

// FormatPace возвращает темп в виде "мин:сек на километр".
// Нулевая (или отрицательная) дистанция дает sentinel, а не деление на ноль.
func FormatPace(movingTimeSec int, distanceKm float64) string {
	if distanceKm <= 0 {
		return PaceNotApplicable
	}
	paceDecimal := (float64(movingTimeSec) / 60) / distanceKm
	paceMin := int(paceDecimal)
	paceSec := int((paceDecimal - float64(paceMin)) * 60)
	return fmt.Sprintf("%d:%02d", paceMin, paceSec)
}

// ExertionLabel переводит ординальную оценку воспринимаемой нагрузки
// (1-10) в текстовую метку.
func ExertionLabel(rpe float64) string {
	switch {
	case rpe <= 3:
		return "Light"
	case rpe <= 6:
		return "Moderate"
	case rpe <= 8:
		return "Hard"
	case rpe <= 9:
		return "Very hard"
	default:
		return "Maximal"
	}
}

// formatDate приводит дату API к dd/mm/yyyy. Неразбираемая дата
// выводится как есть — одна кривая запись не должна валить batch.
func formatDate(startDateLocal string) string {
	t, err := time.Parse("2006-01-02T15:04:05Z", startDateLocal)
	if err != nil {
		return startDateLocal
	}
	return t.Format("02/01/2006")
}

// formatDuration: минуты до часа, дальше "Xh Ymin"
func formatDuration(seconds int) string {
	if seconds < 3600 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%dh %dmin", seconds/3600, (seconds%3600)/60)
}

// zoneTitle возвращает заголовок гистограммы для типа зон
func zoneTitle(zoneType string) string {
	switch zoneType {
	case "heartrate":
		return "Heart rate zones"
	case "pace":
		return "Pace zones"
	default:
		return zoneType + " zones"
	}
}

// formatZoneRange рендерит границы корзины; открытая верхняя корзина
// получает суффикс "+"
func formatZoneRange(b models.ZoneBucket) string {
	if b.OpenTop {
		return fmt.Sprintf("%s+", trimFloat(b.Min))
	}
	return fmt.Sprintf("%s-%s", trimFloat(b.Min), trimFloat(b.Max))
}

// formatZoneTime: "12m 30s", либо "45s" если меньше минуты
func formatZoneTime(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// trimFloat убирает незначащие нули: пульсовые границы целые,
// границы темпа могут быть дробными
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

func sportTypeOrDefault(sportType string) string {
	if sportType == "" {
		return "Workout"
	}
	return sportType
}
