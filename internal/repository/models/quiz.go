package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a list of strings as a JSON text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Category row. api_id comes from the upstream taxonomy and doubles
// as the primary key.
type Category struct {
	APIID     int       `db:"api_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Question row. The correct answer is present only as hashed_answer.
type Question struct {
	ID           string      `db:"id"`
	CategoryID   int         `db:"category_id"`
	Difficulty   string      `db:"difficulty"`
	QuestionText string      `db:"question_text"`
	Choices      StringSlice `db:"choices"`
	HashedAnswer string      `db:"hashed_answer"`
	CreatedAt    time.Time   `db:"created_at"`
}

// DifficultyCount is a row of the category/difficulty aggregation.
type DifficultyCount struct {
	CategoryID int    `db:"category_id"`
	Difficulty string `db:"difficulty"`
}
