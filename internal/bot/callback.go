package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback kinds carried in inline button data as "<kind>:<arg>[:<arg>]"
const (
	callbackMenu     = "menu"
	callbackSpeed    = "speed"
	callbackQuiz     = "quiz"
	callbackCheck    = "check"
	callbackStrand   = "strand"
	callbackResource = "res"
	callbackLevel    = "level"
	callbackPlan     = "plan"
	callbackAvatar   = "avatar"
	callbackStandard = "std"
)

// Menu sections
const (
	sectionExplore   = "explore"
	sectionQuiz      = "quiz"
	sectionReflect   = "reflect"
	sectionSummary   = "summary"
	sectionFocus     = "focus"
	sectionResources = "resources"
	sectionPlan      = "plan"
	sectionAvatar    = "avatar"
	sectionStandard  = "standard"
)

type callback struct {
	Kind string
	Args []string
}

func callbackData(kind string, args ...int) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, kind)
	for _, a := range args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, ":")
}

func menuData(section string) string {
	return callbackMenu + ":" + section
}

func parseCallback(data string) (callback, error) {
	parts := strings.Split(data, ":")
	if parts[0] == "" {
		return callback{}, fmt.Errorf("invalid callback format: %q", data)
	}
	return callback{Kind: parts[0], Args: parts[1:]}, nil
}

// Int returns argument i as an integer
func (c callback) Int(i int) (int, error) {
	if i >= len(c.Args) {
		return 0, fmt.Errorf("callback %s: missing argument %d", c.Kind, i)
	}
	n, err := strconv.Atoi(c.Args[i])
	if err != nil {
		return 0, fmt.Errorf("callback %s: invalid argument %q", c.Kind, c.Args[i])
	}
	return n, nil
}

// Arg returns argument i, or "" when missing
func (c callback) Arg(i int) string {
	if i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
