package board

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"canvasnav/internal/domain"
)

// LoadFile reads a TOML board file
func LoadFile(path string) (domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to read board file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML board and fills in missing ids, statuses and titles
func Parse(data []byte) (domain.Board, error) {
	var b domain.Board
	if err := toml.Unmarshal(data, &b); err != nil {
		return domain.Board{}, fmt.Errorf("failed to parse board: %w", err)
	}
	normalize(&b)
	return b, nil
}

// SaveFile writes board as TOML
func SaveFile(path string, b domain.Board) error {
	data, err := toml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write board file: %w", err)
	}
	return nil
}

func normalize(b *domain.Board) {
	if strings.TrimSpace(b.Title) == "" {
		b.Title = "Board"
	}
	for i := range b.Cards {
		c := &b.Cards[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Title == "" {
			c.Title = fmt.Sprintf("Card %d", i+1)
		}
		switch c.Status {
		case domain.StatusActive, domain.StatusIdle, domain.StatusArchived:
		default:
			c.Status = domain.StatusIdle
		}
	}
}

var demoTopics = []string{
	"Refactor auth middleware",
	"Investigate flaky CI",
	"Draft release notes",
	"Profile memory usage",
	"Migrate settings store",
	"Review onboarding flow",
	"Fix scroll jank",
	"Spike: offline mode",
	"Triage crash reports",
	"Write canvas tests",
	"Tune search ranking",
	"Plan Q3 roadmap",
}

// Demo builds a board of n cards whose bodies vary in length, so layouts come out ragged
func Demo(n int) domain.Board {
	statuses := []domain.CardStatus{domain.StatusActive, domain.StatusIdle, domain.StatusIdle, domain.StatusArchived}
	now := time.Now()

	b := domain.Board{Title: "Sessions"}
	for i := 0; i < n; i++ {
		topic := demoTopics[i%len(demoTopics)]
		lines := make([]string, 0, 1+i%5)
		for j := 0; j <= i%5; j++ {
			lines = append(lines, fmt.Sprintf("Step %d: %s", j+1, strings.ToLower(topic)))
		}
		b.Cards = append(b.Cards, domain.Card{
			ID:        uuid.NewString(),
			Title:     fmt.Sprintf("%s #%d", topic, i+1),
			Body:      strings.Join(lines, "\n"),
			Status:    statuses[i%len(statuses)],
			UpdatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return b
}
