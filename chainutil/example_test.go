package chainutil_test

import (
	"fmt"
	"math"

	"github.com/strongchain-go/node/chainutil"
)

func ExampleAmount() {
	a := chainutil.Amount(0)
	fmt.Println("Zero cents:", a)

	a = chainutil.Amount(500)
	fmt.Println("500 cents:", a)

	a = chainutil.Amount(5)
	fmt.Println("5 cents:", a)
	// Output:
	// Zero cents: 0.00
	// 500 cents: 5.00
	// 5 cents: 0.05
}

func ExampleNewAmount() {
	amountOne, err := chainutil.NewAmount(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountOne)

	amountFraction, err := chainutil.NewAmount(0.125)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountFraction)

	amountZero, err := chainutil.NewAmount(0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountZero)

	_, err = chainutil.NewAmount(math.NaN())
	fmt.Println(err)

	_, err = chainutil.NewAmount(-1)
	fmt.Println(err)

	// Output: 1.00
	// 0.13
	// 0.00
	// invalid amount
	// invalid amount: negative
}
