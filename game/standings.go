package game

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
)

const missingCell = "-"

// Column is one player's header and footer in the standings.
type Column struct {
	Name      string
	Phase     int
	Total     int
	RoundsWon int
	Finisher  bool
}

// Cell is one player's result for one round. Missing is set when the player
// has fewer rounds than the longest history in the session.
type Cell struct {
	Score    int
	PhasedUp bool
	Missing  bool
}

// Standings is a read-only snapshot of a session. Rows are indexed by round,
// cells within a row by player in seating order.
type Standings struct {
	SessionID  string
	FinalPhase int
	Marker     string
	Columns    []Column
	Rows       [][]Cell
}

func (s *Session) Standings() Standings {
	st := Standings{
		SessionID:  s.ID,
		FinalPhase: s.finalPhase,
		Marker:     s.marker,
	}

	for _, p := range s.players {
		st.Columns = append(st.Columns, Column{
			Name:      p.Name(),
			Phase:     p.Phase(),
			Total:     p.TotalScore(),
			RoundsWon: p.RoundsWon(),
			Finisher:  s.IsFinisher(p),
		})
	}

	rounds := s.RoundCount()
	for i := 0; i < rounds; i++ {
		row := make([]Cell, len(s.players))
		for j, p := range s.players {
			r, err := p.Round(i)
			if err != nil {
				s.logger().Errorf("player histories are out of step: %v", err)
				row[j] = Cell{Missing: true}
				continue
			}

			row[j] = Cell{Score: r.Score(), PhasedUp: r.PhasedUp()}
		}

		st.Rows = append(st.Rows, row)
	}

	return st
}

func (c Cell) Text(marker string) string {
	if c.Missing {
		return missingCell
	}

	if c.PhasedUp {
		return fmt.Sprintf("%v%v", c.Score, marker)
	}

	return fmt.Sprint(c.Score)
}

// String renders the standings as an aligned plain text table.
func (st Standings) String() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	header := []string{"Round"}
	footer := []string{""}
	blank := []string{""}
	for _, c := range st.Columns {
		header = append(header, fmt.Sprintf("%v: %v", c.Name, c.Phase))
		footer = append(footer, fmt.Sprintf("Total: %v", c.Total))
		blank = append(blank, "")
	}

	fmt.Fprintln(w, strings.Join(header, "\t"))
	for i, row := range st.Rows {
		line := []string{fmt.Sprintf("Round %v", i+1)}
		for _, c := range row {
			line = append(line, c.Text(st.Marker))
		}

		fmt.Fprintln(w, strings.Join(line, "\t"))
	}

	fmt.Fprintln(w, strings.Join(blank, "\t"))
	fmt.Fprintln(w, strings.Join(footer, "\t"))

	if err := w.Flush(); err != nil {
		log.Errorf("unable to render standings: %v", err)
	}

	return buf.String()
}
