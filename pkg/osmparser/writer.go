package osmparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var nameReplacer = strings.NewReplacer("|", "/", "\r", " ", "\n", " ")

// Write writes md in the map data text format read by geodb.GeoDatabase.LoadFrom. coordinates are written with 7
// decimals, the precision of openstreetmap.
func (md *MapData) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range md.Segments {
		fmt.Fprintf(bw, "%s\n", nameReplacer.Replace(s.Street))
		fmt.Fprintf(bw, "%.7f %.7f %.7f %.7f\n", s.Start.lat, s.Start.lon, s.End.lat, s.End.lon)
		fmt.Fprintf(bw, "%d\n", len(s.Pois))
		for _, poi := range s.Pois {
			fmt.Fprintf(bw, "%s|%.7f %.7f\n", nameReplacer.Replace(poi.Name), poi.Coord.lat, poi.Coord.lon)
		}
	}
	return bw.Flush()
}

func (md *MapData) NumPois() int {
	n := 0
	for _, s := range md.Segments {
		n += len(s.Pois)
	}
	return n
}
