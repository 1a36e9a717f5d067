package guidance

import (
	"github.com/lintang-b-s/tourguide/pkg"
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
)

// Step is what a traveller is told: consecutive proceed commands along the same street are merged into one step
// that keeps the direction of its first edge.
type Step struct {
	CommandType da.CommandType
	Poi         string
	Commentary  string
	Direction   string
	Street      string
	Distance    float64 // miles
}

type TourSummary struct {
	Steps         []Step
	TotalDistance float64 // miles
}

// Summarize merges proceed commands. footpath edges are never merged, each one is its own step.
func Summarize(commands []da.TourCommand) TourSummary {
	summary := TourSummary{Steps: make([]Step, 0, len(commands))}

	var (
		direction      string
		streetDistance float64
	)
	for i, cmd := range commands {
		switch cmd.GetCommandType() {
		case da.COMMENTARY:
			summary.Steps = append(summary.Steps, Step{
				CommandType: da.COMMENTARY,
				Poi:         cmd.GetPoi(),
				Commentary:  cmd.GetCommentary(),
			})
		case da.TURN:
			summary.Steps = append(summary.Steps, Step{
				CommandType: da.TURN,
				Direction:   cmd.GetDirection(),
				Street:      cmd.GetStreet(),
			})
		case da.PROCEED:
			summary.TotalDistance += cmd.GetDistance()
			if direction == "" {
				direction = cmd.GetDirection()
			}
			streetDistance += cmd.GetDistance()

			if i+1 < len(commands) && continuesOnStreet(cmd, commands[i+1]) {
				continue
			}

			summary.Steps = append(summary.Steps, Step{
				CommandType: da.PROCEED,
				Direction:   direction,
				Street:      cmd.GetStreet(),
				Distance:    streetDistance,
			})
			direction = ""
			streetDistance = 0
		}
	}

	return summary
}

func continuesOnStreet(cmd, next da.TourCommand) bool {
	return next.GetCommandType() == da.PROCEED && next.GetStreet() == cmd.GetStreet() &&
		cmd.GetStreet() != pkg.FOOTPATH_STREET_NAME
}
