package client_test

import (
	"context"
	"fmt"

	"go.dedis.ch/veristore/client"
	"go.dedis.ch/veristore/core/types"
	"go.dedis.ch/veristore/internal/testing/fake"
)

func ExampleClient_SafeGet() {
	transport := fake.NewTransport()
	transport.Root = types.NewRoot(0, []byte{0xaa})
	transport.Item = types.NewItem([]byte("ping"), []byte("pong"), 1)
	transport.Proof = types.Proof{Leaf: []byte{1}, Index: 1, At: 1, Root: []byte{0xbb}}

	c, err := client.NewClient(client.Config{
		Transport: transport,
		Verifier:  fake.NewVerifier(),
	})
	if err != nil {
		panic("client: " + err.Error())
	}

	value, err := c.SafeGet(context.Background(), []byte("ping"))
	if err != nil {
		panic("safe get: " + err.Error())
	}

	fmt.Println(string(value))

	root, err := c.CurrentRoot(context.Background())
	if err != nil {
		panic("root: " + err.Error())
	}

	fmt.Println(root)

	// Output: pong
	// root[1]{0xbb}
}
