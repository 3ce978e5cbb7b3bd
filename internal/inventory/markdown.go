// Package inventory loads a candidate's achievements inventory from its
// markdown source file.
package inventory

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

var (
	categoryHeaderRe = regexp.MustCompile(`^##\s+(.+)$`)
	itemBulletRe     = regexp.MustCompile(`^[-*]\s+(.+)$`)
	learnedTagRe     = regexp.MustCompile(`\s*\[learned:\s*(\d{4}-\d{2}-\d{2})\]`)
)

// ParseMarkdown parses achievements markdown into the structured inventory.
// Categories are "## Name" headers; items are bullets beneath them. A
// trailing "[learned: YYYY-MM-DD]" tag is lifted into the item's recorded
// date and removed from the matching text. Bullets before the first header
// are ignored.
func ParseMarkdown(content string) types.AchievementsInventory {
	inventory := types.AchievementsInventory{}
	currentCategory := -1

	for _, line := range strings.Split(content, "\n") {
		if m := categoryHeaderRe.FindStringSubmatch(line); m != nil {
			inventory = append(inventory, types.AchievementCategory{
				Name:  strings.TrimSpace(m[1]),
				Items: []types.AchievementItem{},
			})
			currentCategory = len(inventory) - 1
			continue
		}

		m := itemBulletRe.FindStringSubmatch(line)
		if m == nil || currentCategory < 0 {
			continue
		}

		text := strings.TrimSpace(m[1])
		item := types.AchievementItem{}
		if tag := learnedTagRe.FindStringSubmatch(text); tag != nil {
			item.LearnedDate = tag[1]
			text = strings.TrimSpace(learnedTagRe.ReplaceAllString(text, ""))
		}
		item.Text = text
		inventory[currentCategory].Items = append(inventory[currentCategory].Items, item)
	}

	return inventory
}

// LoadFile reads and parses an achievements markdown file.
func LoadFile(path string) (types.AchievementsInventory, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievements file %s: %w", path, err)
	}
	return ParseMarkdown(string(content)), nil
}
