package tags

import "github.com/yohamta/donburi"

var (
	Arena   = donburi.NewTag().SetName("Arena")
	Session = donburi.NewTag().SetName("Session")
)
