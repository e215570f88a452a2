// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package menuopts

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
)

type xmlDocument struct {
	Days []xmlDay `xml:"day"`
}

type xmlDay struct {
	Name  string    `xml:"name,attr"`
	Meals []xmlMeal `xml:"meal"`
}

type xmlMeal struct {
	Type    string      `xml:"type,attr"`
	Options []xmlOption `xml:"option"`
}

type xmlOption struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// Parse decodes a menu-option document:
//
//	<menu>
//	  <day name="monday">
//	    <meal type="breakfast">
//	      <option id="b1">Idli Sambar</option>
//	    </meal>
//	  </day>
//	</menu>
//
// Option order is kept as written. A repeated day replaces the earlier one.
// Declared non-UTF-8 encodings are decoded. Errors wrap ErrParseFailed.
func Parse(data []byte) (models.MenuOptions, error) {
	var doc xmlDocument
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("%w: no day elements", ErrParseFailed)
	}

	result := make(models.MenuOptions, len(doc.Days))
	for _, d := range doc.Days {
		day := strings.ToLower(strings.TrimSpace(d.Name))
		if !models.IsValidDay(day) {
			return nil, fmt.Errorf("%w: unknown day %q", ErrParseFailed, d.Name)
		}
		result[day] = make(map[string][]models.MealOption)

		for _, m := range d.Meals {
			mealType := strings.ToLower(strings.TrimSpace(m.Type))
			if !models.IsValidMealType(mealType) {
				return nil, fmt.Errorf("%w: unknown meal type %q on %s", ErrParseFailed, m.Type, day)
			}

			options := make([]models.MealOption, 0, len(m.Options))
			for k, o := range m.Options {
				name := strings.TrimSpace(o.Text)
				if name == "" {
					continue
				}
				id := strings.TrimSpace(o.ID)
				if id == "" {
					id = fmt.Sprintf("opt-%d", k)
				}
				options = append(options, models.MealOption{ID: id, Name: name})
			}
			result[day][mealType] = options
		}
	}

	return result, nil
}

// checkTrailing reads past the root element. Only comments, processing
// instructions and whitespace may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after root", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected text after root")
			}
		}
	}
}
