package domain

import "time"

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02.01.2006" // DD.MM.YYYY, ru-RU
)

// Default schedule of the repair shop
var (
	DefaultTimeSlots = []string{
		"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}

	DefaultServiceTypes = []string{
		"Ремонт ноутбуков",
		"Ремонт ПК",
		"Ремонт телефонов",
		"Восстановление данных",
		"Настройка сетей",
		"Удаление вирусов",
	}

	DefaultClosedWeekday = time.Sunday
)

// Business validation constants
const (
	MaxClientNameLength  = 255
	MaxClientPhoneLength = 50
	MaxNotesLength       = 2000
)
