// Package schedule builds the weekly hour-by-day occupancy grid from visit
// records. The grid is a pure read view: it is recomputed in full from the
// visit set for the selected week and never touches the records themselves.
package schedule

import (
	"hash/fnv"
	"time"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

// Operating hours of the room. The axis spans OpenHour..CloseHour inclusive.
const (
	OpenHour  = 8
	CloseHour = 23
)

// DayLabels are the grid columns, Monday first.
var DayLabels = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Occupant is one visit rendered into a cell.
type Occupant struct {
	Name  string `json:"name"`
	User  string `json:"user"`
	Color string `json:"color"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Cell holds every visit covering one (day, hour) slot, in input record
// order. Overlaps are kept, not merged: the presentation layer decides
// whether to show all of them, a count, or just the first.
type Cell struct {
	Occupants []Occupant `json:"occupants,omitempty"`
}

// First returns the first-match occupant, the historical single-occupant
// rendering policy.
func (c Cell) First() (Occupant, bool) {
	if len(c.Occupants) == 0 {
		return Occupant{}, false
	}
	return c.Occupants[0], true
}

// Grid is the weekly occupancy matrix. Cells is indexed [hour][day] with
// hour rows following Hours and day columns following DayLabels.
type Grid struct {
	WeekStart string    `json:"week_start"`
	Days      [7]string `json:"days"`
	Hours     []string  `json:"hours"`
	Cells     [][7]Cell `json:"cells"`
}

// Hours returns the axis labels for the operating-hour slots.
func Hours() []string {
	labels := make([]string, 0, CloseHour-OpenHour+1)
	for h := OpenHour; h <= CloseHour; h++ {
		labels = append(labels, models.HourLabel(h))
	}
	return labels
}

// BuildWeek assembles the grid for the Monday-start week beginning at
// weekStart. A visit occupies every slot in its half-open [start, end)
// interval: one ending at 17:00 does not occupy the 17:00 slot. The weekday
// bucket is derived from the visit date; visits outside the week or with an
// unreadable date or time are skipped rather than failing the build.
func BuildWeek(weekStart time.Time, visits []models.Visit) Grid {
	grid := Grid{
		WeekStart: models.FormatDate(weekStart),
		Days:      DayLabels,
		Hours:     Hours(),
		Cells:     make([][7]Cell, CloseHour-OpenHour+1),
	}

	weekEnd := weekStart.AddDate(0, 0, 7)

	for _, visit := range visits {
		day, err := models.ParseDate(visit.Date)
		if err != nil || day.Before(weekStart) || !day.Before(weekEnd) {
			continue
		}

		startHour, err := models.ParseHour(visit.StartTime)
		if err != nil {
			continue
		}
		endHour, err := models.ParseHour(visit.EndTime)
		if err != nil {
			continue
		}

		dayIdx := (int(day.Weekday()) + 6) % 7
		visitor := visit.Visitor()
		occupant := Occupant{
			Name:  visitor.Name,
			User:  visit.User,
			Color: ColorFor(visitor.ColorKey()),
			Start: visit.StartTime,
			End:   visit.EndTime,
		}

		for hour := startHour; hour < endHour; hour++ {
			if hour < OpenHour || hour > CloseHour {
				continue
			}
			row := hour - OpenHour
			grid.Cells[row][dayIdx].Occupants = append(grid.Cells[row][dayIdx].Occupants, occupant)
		}
	}

	return grid
}

var palette = []string{"#6366f1", "#22c55e", "#f59e0b", "#ef4444", "#8b5cf6"}

// Legacy fixed assignments kept so long-time users keep their colors.
var namedColors = map[string]string{
	"Mamlesh":            "#6366f1",
	"Varun":              "#22c55e",
	"Venu":               "#f59e0b",
	models.GuestCategory: "#ef4444",
}

// ColorFor assigns a stable color to a visitor identity. Known names keep
// their fixed color; anyone else hashes into the palette.
func ColorFor(key string) string {
	if color, ok := namedColors[key]; ok {
		return color
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return palette[h.Sum32()%uint32(len(palette))]
}
