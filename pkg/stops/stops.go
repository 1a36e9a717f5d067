package stops

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/lintang-b-s/tourguide/pkg/util"
)

type Stop struct {
	Poi        string
	Commentary string
}

// Stops is the ordered list of stops of a tour.
type Stops struct {
	stops []Stop
}

func NewStops(stops []Stop) *Stops {
	return &Stops{stops: stops}
}

// Load reads one stop per line, "<poi name>|<commentary>". blank lines are skipped and a line without "|" is a stop
// without commentary.
func Load(path string) (*Stops, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "unable to open stops file %s", path)
	}
	defer f.Close()

	return LoadFrom(f)
}

func LoadFrom(r io.Reader) (*Stops, error) {
	br := bufio.NewReader(r)
	s := &Stops{stops: make([]Stop, 0)}
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return s, nil
		} else if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "unable to read stops")
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		poi, commentary, _ := strings.Cut(line, "|")
		s.stops = append(s.stops, Stop{Poi: poi, Commentary: commentary})
	}
}

func (s *Stops) Size() int {
	return len(s.stops)
}

// GetPoiData returns ok=false when i is out of range.
func (s *Stops) GetPoiData(i int) (string, string, bool) {
	if i < 0 || i >= len(s.stops) {
		return "", "", false
	}
	return s.stops[i].Poi, s.stops[i].Commentary, true
}

func (s *Stops) GetStops() []Stop {
	return s.stops
}
