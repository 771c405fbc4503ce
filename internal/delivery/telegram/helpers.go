package telegram

import (
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// houseImagePath returns where the result image of a house is expected.
func houseImagePath(dir string, house entities.House) string {
	return filepath.Join(dir, house.Slug()+".png")
}

// buildHousePhoto returns a photo message for the house image, or false if
// the image file is missing.
func buildHousePhoto(dir string, house entities.House, chatID int64) (*tgbotapi.PhotoConfig, bool) {
	path := houseImagePath(dir, house)
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}

	p := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	return &p, true
}
