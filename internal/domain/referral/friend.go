package referral

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

var (
	friendFirstNames = []string{"Alex", "Priya", "Tom", "Sara", "Ivy", "Zoe", "Omar", "Liam", "Nora", "Elena", "Miles", "Jun", "Aria", "Mateo", "Ava"}
	friendLastNames  = []string{"Chen", "Singh", "Lee", "Park", "Nguyen", "Ali", "Brown", "Garcia", "Rao", "Kim", "Silva", "Mehta", "Khan", "Patel", "Lopez"}
	friendDomains    = []string{"example.com", "mail.test", "inbox.dev", "postbox.app"}
)

// FriendGenerator invents the invitee attached to a mock send.
type FriendGenerator interface {
	NewFriend() Friend
}

type RandomFriendGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomFriendGenerator() *RandomFriendGenerator {
	return &RandomFriendGenerator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededFriendGenerator gives a reproducible sequence.
func NewSeededFriendGenerator(seed uint64) *RandomFriendGenerator {
	return &RandomFriendGenerator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (g *RandomFriendGenerator) NewFriend() Friend {
	g.mu.Lock()
	first := friendFirstNames[g.rnd.IntN(len(friendFirstNames))]
	last := friendLastNames[g.rnd.IntN(len(friendLastNames))]
	token := g.rnd.IntN(10000)
	domain := friendDomains[g.rnd.IntN(len(friendDomains))]
	g.mu.Unlock()

	return Friend{
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s%04d@%s", slug(first), slug(last), token, domain),
	}
}

// slug lowercases s and drops everything outside a-z.
func slug(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(s))
}
