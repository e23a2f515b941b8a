package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GuestPlayerID is the member id of the always-available guest candidate.
// Real uids never take this value.
const GuestPlayerID = "guest-player"

// Positions are the fielding positions offered for a lineup slot.
var Positions = []string{"投", "捕", "一", "二", "三", "遊", "左", "中", "右", "DH", "ベンチ"}

// LineupSystem is the batting system of a lineup: NORMAL9 or DH10..DH15.
type LineupSystem string

// SystemNormal9 is the nine-player system without a designated hitter.
const SystemNormal9 LineupSystem = "NORMAL9"

// Systems are the lineup systems offered to admins.
var Systems = []LineupSystem{SystemNormal9, "DH10", "DH11", "DH12", "DH13", "DH14", "DH15"}

const (
	minDHSlots = 10
	maxDHSlots = 15
)

// SlotCount returns the number of batting slots of the system. NORMAL9 has
// nine; DHn has n for n in 10..15. Anything else falls back to ten.
func (s LineupSystem) SlotCount() int {
	if s == SystemNormal9 {
		return 9
	}
	rest, ok := strings.CutPrefix(string(s), "DH")
	if !ok {
		return minDHSlots
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < minDHSlots || n > maxDHSlots {
		return minDHSlots
	}
	return n
}

// Valid reports whether s is one of Systems.
func (s LineupSystem) Valid() bool {
	for _, sys := range Systems {
		if s == sys {
			return true
		}
	}
	return false
}

// LineupSlot is one filled batting slot.
type LineupSlot struct {
	Order    int    `json:"order"`
	MemberID string `json:"memberId"`
	Position string `json:"position"`
}

// Lineup is the batting order of a game event. Starting is sparse: empty
// slots are absent.
type Lineup struct {
	System      LineupSystem `json:"system"`
	Starting    []LineupSlot `json:"starting"`
	Memo        string       `json:"memo"`
	IsPublished bool         `json:"isPublished"`
}

var (
	_ driver.Valuer = Lineup{}
	_ sql.Scanner   = (*Lineup)(nil)
)

// Value implements driver.Valuer.
func (l Lineup) Value() (driver.Value, error) {
	if l.Starting == nil {
		l.Starting = []LineupSlot{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *Lineup) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = Lineup{}
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("unsupported lineup column type %T", src)
	}
	return json.Unmarshal(b, l)
}

// SlotCount returns the number of batting slots of the lineup's system.
func (l Lineup) SlotCount() int {
	return l.System.SlotCount()
}

// Slot returns the slot at the given batting order.
func (l Lineup) Slot(order int) (LineupSlot, bool) {
	for _, s := range l.Starting {
		if s.Order == order {
			return s, true
		}
	}
	return LineupSlot{}, false
}

// Sorted returns the filled slots ordered by batting order.
func (l Lineup) Sorted() []LineupSlot {
	slots := make([]LineupSlot, len(l.Starting))
	copy(slots, l.Starting)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Order < slots[j].Order
	})
	return slots
}

// DuplicateMembers returns the members placed in more than one slot, in
// batting order. The guest player may fill any number of slots and is never
// reported.
func (l Lineup) DuplicateMembers() []string {
	seen := map[string]int{}
	var dups []string
	for _, s := range l.Sorted() {
		if s.MemberID == "" || s.MemberID == GuestPlayerID {
			continue
		}
		seen[s.MemberID]++
		if seen[s.MemberID] == 2 {
			dups = append(dups, s.MemberID)
		}
	}
	return dups
}
