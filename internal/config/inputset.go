package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/touchkey/internal/layout"
)

// Input-set definition files are JSON:
//
//	{
//	  "locale": "de",
//	  "rows": [
//	    ["q", "w", {"neutral": "e", "hidden": "é"}, ...],
//	    ...
//	  ]
//	}
//
// A row entry is either a bare string or an object with neutral and
// optional uppercased, lowercased, and hidden fields.

// ErrInvalidInputSet is returned for malformed input-set JSON.
var ErrInvalidInputSet = errors.New("invalid input set definition")

// LoadInputSet reads an input-set definition file.
func LoadInputSet(path string) (string, layout.InputSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", layout.InputSet{}, fmt.Errorf("reading input set %s: %w", path, err)
	}
	return ParseInputSet(data)
}

// ParseInputSet parses an input-set definition, returning its locale
// and rows.
func ParseInputSet(data []byte) (string, layout.InputSet, error) {
	if !gjson.ValidBytes(data) {
		return "", layout.InputSet{}, fmt.Errorf("%w: not valid json", ErrInvalidInputSet)
	}

	locale := gjson.GetBytes(data, "locale").String()
	if locale == "" {
		return "", layout.InputSet{}, fmt.Errorf("%w: missing locale", ErrInvalidInputSet)
	}

	rowsResult := gjson.GetBytes(data, "rows")
	if !rowsResult.IsArray() {
		return "", layout.InputSet{}, fmt.Errorf("%w: rows must be an array", ErrInvalidInputSet)
	}

	var set layout.InputSet
	var parseErr error
	rowsResult.ForEach(func(_, rowResult gjson.Result) bool {
		if !rowResult.IsArray() {
			parseErr = fmt.Errorf("%w: row must be an array", ErrInvalidInputSet)
			return false
		}
		var row layout.Row
		rowResult.ForEach(func(_, itemResult gjson.Result) bool {
			item, err := parseItem(itemResult)
			if err != nil {
				parseErr = err
				return false
			}
			row = append(row, item)
			return true
		})
		if parseErr != nil {
			return false
		}
		set.Rows = append(set.Rows, row)
		return true
	})
	if parseErr != nil {
		return "", layout.InputSet{}, parseErr
	}
	return locale, set, nil
}

func parseItem(r gjson.Result) (layout.InputItem, error) {
	if r.Type == gjson.String {
		return layout.NewItem(r.String()), nil
	}
	if !r.IsObject() {
		return layout.InputItem{}, fmt.Errorf("%w: item must be a string or object", ErrInvalidInputSet)
	}

	neutral := r.Get("neutral").String()
	if neutral == "" {
		return layout.InputItem{}, fmt.Errorf("%w: item missing neutral", ErrInvalidInputSet)
	}

	item := layout.NewItem(neutral)
	if v := r.Get("uppercased"); v.Exists() {
		item.Uppercased = v.String()
	}
	if v := r.Get("lowercased"); v.Exists() {
		item.Lowercased = v.String()
	}
	if v := r.Get("hidden"); v.Exists() {
		item = layout.NewItemWithHidden(neutral, v.String())
		if u := r.Get("uppercased"); u.Exists() {
			item.Uppercased = u.String()
		}
		if l := r.Get("lowercased"); l.Exists() {
			item.Lowercased = l.String()
		}
	}
	return item, nil
}
