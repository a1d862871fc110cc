package viz

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Frame returns the curves as a dataframe with columns x, predicted, exact.
func Frame(c Curves) (dataframe.DataFrame, error) {
	if err := c.validate(); err != nil {
		return dataframe.DataFrame{}, err
	}
	df := dataframe.New(
		series.New(c.X, series.Float, "x"),
		series.New(c.Predicted, series.Float, "predicted"),
		series.New(c.Exact, series.Float, "exact"),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "building dataframe")
	}
	return df, nil
}

// WriteCSV writes the curves as CSV with a header row.
func WriteCSV(c Curves, w io.Writer) error {
	df, err := Frame(c)
	if err != nil {
		return err
	}
	return errors.Wrap(df.WriteCSV(w), "writing csv")
}
