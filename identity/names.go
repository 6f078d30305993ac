package identity

import (
	"fmt"
	"math/rand"
	"time"
)

// Fun dog-themed default usernames, handed out when a user leaves the name
// field blank. Display labels only; duplicates across devices are fine.
var defaultUsernames = []string{
	"PawsomeParent",
	"WaggyTailFan",
	"BarkBuddy",
	"FurryFriend",
	"PuppyLover",
	"TailWagger",
	"DogWhisperer",
	"PawPatroller",
	"BiscuitGiver",
	"WoofExpert",
	"SnugglePup",
	"FetchMaster",
	"BellyRubber",
	"TreatDispenser",
	"LeashHolder",
	"ZoomiesWatcher",
	"BoopTheSnoot",
	"FluffAdmirer",
	"GoodBoyFan",
	"PupParent",
}

// GeneratePseudonym picks a base name and a numeric suffix in 1..999.
func GeneratePseudonym() string {
	name := defaultUsernames[rand.Intn(len(defaultUsernames))]
	num := rand.Intn(999) + 1
	return fmt.Sprintf("%s%d", name, num)
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewDeviceID builds a fresh anonymous device identifier:
// guest_<unix millis>_<9 base36 chars>.
func NewDeviceID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return fmt.Sprintf("guest_%d_%s", time.Now().UnixMilli(), suffix)
}
