package domain

import "fmt"

type Display struct {
	NoImage  bool
	Path     string
	Name     string
	Position int
	Total    int
}

func (display Display) Counter() string {
	return fmt.Sprintf("%d / %d", display.Position, display.Total)
}
