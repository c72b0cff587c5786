// Copyright 2017 Aleksey Blinov. All rights reserved.

package main

import (
	"fmt"
	"log"

	"github.com/baobabus/go-quantity/fmtx"
	"github.com/baobabus/go-quantity/si"
)

func main() {

	// 45 miles per hour, driven for 3 hours
	speed, err := si.Mile.MulScalar(45).Div(si.Hour)
	if err != nil {
		log.Fatal("Speed error: ", err)
	}
	distance := si.Hour.MulScalar(3).Mul(speed)

	// Canonical rendering in SI base units
	fmt.Println(distance) // 217261.44 m

	// Conversion to a chosen display unit
	km, err := distance.In(si.Kilometer)
	if err != nil {
		log.Fatal("Conversion error: ", err)
	}
	fmt.Println(km) // 217.26144

	// Automatic display unit selection
	fmt.Println(fmtx.Render(distance, fmtx.MetricSet("m", si.Meter)...)) // 217.26144 km
}
