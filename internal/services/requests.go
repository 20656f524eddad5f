package services

type ListRequest struct {
	Folder string
}

type ActionType string

const (
	ActionMove  ActionType = "move"
	ActionTrash ActionType = "trash"
)

type ActionRequest struct {
	Type        ActionType
	SourcePath  string
	Destination string
}

type PickRequest struct {
	Title string
	Start string
}

type DescribeRequest struct {
	Path string
}
