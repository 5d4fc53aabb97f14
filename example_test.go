package jumptable_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/jumptable"
	"github.com/aretw0/jumptable/pkg/adapters/memory"
	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
)

// ExampleNew_memory drives a session with scripted input against an in-memory store.
func ExampleNew_memory() {
	store := memory.NewStore()
	script := strings.Join([]string{
		"1",   // Stack
		"2 a", // Push a
		"2 b", // Push b
		"4",   // Save & Move to Queue
		"1 x", // Enqueue x
		"5",   // Quit
	}, "\n") + "\n"

	session := jumptable.New(store, jumptable.WithIO(strings.NewReader(script), nil))

	ctx := context.Background()
	if err := session.Run(ctx); err != nil {
		log.Fatal(err)
	}

	for _, kind := range domain.Kinds {
		items, err := store.Load(ctx, kind)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %q\n", kind, codec.Encode(items))
	}
	// Output:
	// stack: "a,b,"
	// queue: "x,"
	// list: ""
}
