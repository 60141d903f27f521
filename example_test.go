package signwit_test

import (
	"errors"
	"fmt"

	signwit "github.com/signwit-dev/signwit-go"
)

func ExampleNewPositive() {
	price, err := signwit.NewPositive(9.99)
	if err != nil {
		panic(err)
	}
	fmt.Println(price.Value())

	_, err = signwit.NewPositive(0.0)
	fmt.Println(err)
	// Output:
	// 9.99
	// The value 0 was not positive
}

func ExamplePositive_SubNegative() {
	revenue, _ := signwit.NewPositive(120)
	loss, _ := signwit.NewNegative(-30)

	// Subtracting a proven-negative value cannot leave the positive side,
	// so the result is still a witness.
	total := revenue.SubNegative(loss)
	fmt.Println(total.Value())
	// Output: 150
}

func ExamplePositive_Sub() {
	a, _ := signwit.NewPositive(3)
	b, _ := signwit.NewPositive(8)

	// The difference of two positives proves nothing, so Sub hands back a
	// raw int that must be re-validated before it can be a witness again.
	raw := a.Sub(b)
	if _, err := signwit.NewPositive(raw); err != nil {
		fmt.Println(err)
	}
	// Output: The value -5 was not positive
}

func ExampleCompose() {
	debt, _ := signwit.NewNegative(-250.0)
	months, _ := signwit.NewPositive(5.0)

	perMonth := signwit.Compose(signwit.OpDiv, debt.Term(), months.Term())
	if n, ok := perMonth.Negative(); ok {
		fmt.Println(n.Value())
	}
	// Output: -50
}

func ExampleUnmarshalConfig() {
	type limits struct {
		MaxRate signwit.Positive[float64] `json:"max_rate"`
	}

	var l limits
	err := signwit.UnmarshalConfig(signwit.Config{"max_rate": -1.0}, &l)
	fmt.Println(errors.Is(err, signwit.ErrNotPositive))
	// Output: true
}
