package models

import "time"

// SeasonArchive хранит сериализованный снимок финальной таблицы.
// Запись неизменяема после создания.
type SeasonArchive struct {
	ID         int       `json:"id"`
	SeasonName string    `json:"season_name"`
	DataJSON   string    `json:"data_json"`
	Date       time.Time `json:"date"`
}
