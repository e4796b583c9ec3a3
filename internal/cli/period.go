package cli

import (
	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/spf13/cobra"
)

// periodFlags selects the period a board command works on.
type periodFlags struct {
	date   string
	week   string
	weekly bool
}

func (f *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Day to use (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.week, "week", "", "ISO week to use (YYYY-Www)")
	cmd.Flags().BoolVarP(&f.weekly, "weekly", "w", false, "Use the current week")
	cmd.MarkFlagsMutuallyExclusive("date", "week", "weekly")
}

// key returns the selected period. Without flags it is the current period of
// the configured default view.
func (f *periodFlags) key(c *app.Container) (domain.AddressingKey, error) {
	switch {
	case f.date != "":
		k, err := domain.ParseDateKey(f.date)
		if err != nil {
			return nil, err
		}
		return k, nil
	case f.week != "":
		k, err := domain.ParseWeekKey(f.week)
		if err != nil {
			return nil, err
		}
		return k, nil
	case f.weekly:
		return domain.CurrentKey(domain.KindWeekly, c.Clock.Now()), nil
	}
	kind := domain.KindDaily
	if c.AppConfig != nil {
		kind = c.AppConfig.Board.View()
	}
	return domain.CurrentKey(kind, c.Clock.Now()), nil
}

// weekKey returns the selected week. A day selects the ISO week containing it.
func (f *periodFlags) weekKey(c *app.Container) (domain.YearWeekKey, error) {
	if f.date != "" {
		d, err := domain.ParseDateKey(f.date)
		if err != nil {
			return domain.YearWeekKey{}, err
		}
		return domain.ISOWeekOf(d.Time()), nil
	}
	if f.week != "" {
		return domain.ParseWeekKey(f.week)
	}
	return domain.ISOWeekOf(c.Clock.Now()), nil
}
