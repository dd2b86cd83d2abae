package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/udisondev/tussle/internal/game/combat"
)

func TestPrintStacks_ConcurrentBattles(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	logger := printStacks(cmd)

	const battles = 16
	var wg sync.WaitGroup
	for range battles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.ManeuverStack(combat.TurnInfo{Round: 1, Actor: "Alf", Maneuver: "Barehanded Blow"}, combat.NewActionStack())
		}()
	}
	wg.Wait()

	block := "-- round 1, Alf: Barehanded Blow\n\n"
	assert.Equal(t, strings.Repeat(block, battles), out.String())
}
