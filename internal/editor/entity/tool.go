package entity

import "strings"

// Tool 是点击地图时执行的编辑动作。
type Tool uint8

const (
	ToolSelect Tool = iota
	ToolPaint
	ToolFill
	ToolClaim
)

var toolNames = [...]string{"select", "paint", "fill", "claim"}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "unknown"
}

func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if strings.EqualFold(name, n) {
			return Tool(i), nil
		}
	}
	return 0, ErrUnknownTool.WithData("tool", name)
}
