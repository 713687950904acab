package server

import (
	"Shotshelf/handler"
)

type Handlers struct {
	Group      *handler.GroupHandler
	Category   *handler.Category
	Categorize *handler.Categorize
	Export     *handler.Export
}
