package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"glowutt/pkg/cru"
	"glowutt/pkg/schedule"
)

// RoomHours is one bar of the occupancy chart: total booked hours for a room
// over the selected day range.
type RoomHours struct {
	Room  string  `json:"room"`
	Hours float64 `json:"hours"`
}

// RoomCapacity is one bar of the ranking chart.
type RoomCapacity struct {
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
}

// OccupancyData sums the booked hours per room for sessions falling between
// startDay and endDay inclusive, sorted by room name.
func OccupancyData(courses []*cru.Course, startDay, endDay string) ([]RoomHours, error) {
	filtered, err := schedule.FilterByCourseAndDayRange(courses, nil, startDay, endDay)
	if err != nil {
		return nil, err
	}

	minutes := make(map[string]int)
	for _, course := range filtered {
		for _, s := range course.Sessions {
			if s.Room == "" {
				continue
			}
			room := strings.ToUpper(s.Room)
			minutes[room] += s.End.Minutes() - s.Start.Minutes()
		}
	}

	data := make([]RoomHours, 0, len(minutes))
	for room, m := range minutes {
		data = append(data, RoomHours{Room: room, Hours: float64(m) / 60})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Room < data[j].Room })
	return data, nil
}

// CapacityRanking lists every room with its maximum recorded capacity,
// largest first.
func CapacityRanking(courses []*cru.Course) []RoomCapacity {
	capacities := make(map[string]int)
	for _, c := range courses {
		for _, s := range c.Sessions {
			if s.Room == "" {
				continue
			}
			room := strings.ToUpper(s.Room)
			if s.Capacity > capacities[room] {
				capacities[room] = s.Capacity
			}
		}
	}

	data := make([]RoomCapacity, 0, len(capacities))
	for room, capacity := range capacities {
		data = append(data, RoomCapacity{Room: room, Capacity: capacity})
	}
	sort.Slice(data, func(i, j int) bool {
		if data[i].Capacity != data[j].Capacity {
			return data[i].Capacity > data[j].Capacity
		}
		return data[i].Room < data[j].Room
	})
	return data
}

// WriteOccupancyHTML renders the occupancy data as a standalone HTML page
// embedding a Vega-Lite bar chart.
func WriteOccupancyHTML(data []RoomHours, title string, w io.Writer) error {
	spec := vegaBarSpec(title, data, "room", "hours", "Booked hours")
	return writeHTML(title, spec, w)
}

// WriteRankingHTML renders the capacity ranking as a standalone HTML page.
func WriteRankingHTML(data []RoomCapacity, w io.Writer) error {
	title := "Rooms ranked by seating capacity"
	spec := vegaBarSpec(title, data, "room", "capacity", "Seats")
	return writeHTML(title, spec, w)
}

// vegaBarSpec assembles a minimal Vega-Lite v5 bar chart specification.
func vegaBarSpec(title string, data any, xField, yField, yTitle string) map[string]any {
	return map[string]any{
		"$schema":     "https://vega.github.io/schema/vega-lite/v5.json",
		"title":       title,
		"description": title,
		"width":       600,
		"data":        map[string]any{"values": data},
		"mark":        "bar",
		"encoding": map[string]any{
			"x": map[string]any{"field": xField, "type": "nominal", "sort": nil},
			"y": map[string]any{"field": yField, "type": "quantitative", "title": yTitle},
		},
	}
}

func writeHTML(title string, spec map[string]any, w io.Writer) error {
	specJSON, err := json.MarshalIndent(spec, "    ", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize chart spec: %w", err)
	}

	_, err = fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
</head>
<body>
  <div id="vis"></div>
  <script type="text/javascript">
    const spec = %s;
    vegaEmbed("#vis", spec);
  </script>
</body>
</html>
`, title, specJSON)
	if err != nil {
		return fmt.Errorf("failed to write chart HTML: %w", err)
	}
	return nil
}
