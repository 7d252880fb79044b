// Package exercises contains the short in-class drills that accompany the
// Monte Carlo material: boolean-to-string mapping, sign manipulation,
// sorting, list filtering, a repaired multiply, FizzBuzz, and the
// barometric air-pressure formula used to motivate array arithmetic.
//
// Every drill is a small pure function. Drills that need a random input
// take an explicit *rand.Rand so a classroom run can be replayed.
//
//	fmt.Println(exercises.YesNo(true))           // Yes
//	fmt.Println(exercises.Negative(39))          // -39
//	fmt.Println(exercises.FizzBuzz(15)[14])      // FizzBuzz
//	fmt.Println(exercises.FilterByState(exercises.ArizonaCities, "AZ"))
package exercises
