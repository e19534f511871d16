package regression

import (
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// resultsDocument is the stable JSON shape of a Results value. The
// family travels as its string name so stored documents stay readable
// and do not depend on enum ordering.
type resultsDocument struct {
	Family       string        `json:"family"`
	Coefficients []Coefficient `json:"coefficients"`
	Stats        FitStats      `json:"stats"`
}

// SaveResults writes the results as an indented JSON document.
// Warnings are not serialized; they are live error values tied to the
// fitting run that produced them.
func SaveResults(w io.Writer, r *Results) error {
	if r == nil {
		return errors.NewValueError("SaveResults", "results is nil")
	}
	doc := resultsDocument{
		Family:       r.family.String(),
		Coefficients: r.Coefficients(),
		Stats:        r.stats,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "statgo: SaveResults: encoding failed")
	}
	return nil
}

// LoadResults reads a document written by SaveResults and rebuilds the
// Results value, including its by-name lookup index.
func LoadResults(rd io.Reader) (*Results, error) {
	var doc resultsDocument
	if err := json.NewDecoder(rd).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "statgo: LoadResults: decoding failed")
	}
	family, err := ParseFamily(doc.Family)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(doc.Coefficients))
	for j, c := range doc.Coefficients {
		index[c.Name] = j
	}
	return &Results{
		family: family,
		coefs:  doc.Coefficients,
		index:  index,
		stats:  doc.Stats,
	}, nil
}

// SaveResultsFile writes the results document to the named file,
// creating or truncating it.
func SaveResultsFile(path string, r *Results) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "statgo: SaveResultsFile: create failed")
	}
	defer f.Close()
	if err := SaveResults(f, r); err != nil {
		return err
	}
	return errors.Wrap(f.Sync(), "statgo: SaveResultsFile: sync failed")
}

// LoadResultsFile reads a results document from the named file.
func LoadResultsFile(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "statgo: LoadResultsFile: open failed")
	}
	defer f.Close()
	return LoadResults(f)
}
