package enum_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore-utils/enum"
)

func ExampleEach() {
	enum.Each([]any{"moe", "larry", "curly"}, func(v, k, _ any) {
		fmt.Println(k, v)
	})
	// Output:
	// 0 moe
	// 1 larry
	// 2 curly
}

func ExampleMap() {
	doubled := enum.Map([]any{1, 2, 3}, func(v, _, _ any) any {
		return v.(int) * 2
	})
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExampleFilter() {
	evens := enum.Filter([]any{1, 2, 3, 4, 5, 6}, func(v, _, _ any) bool {
		return v.(int)%2 == 0
	})
	fmt.Println(evens)
	// Output: [2 4 6]
}

func ExampleFilter_mapping() {
	ages := map[string]int{"moe": 40, "larry": 50, "curly": 60}
	older := enum.Filter(ages, func(v, _, _ any) bool {
		return v.(int) > 45
	})
	fmt.Println(older)
	// Output: [(curly, 60) (larry, 50)]
}

func ExampleDetect() {
	first, ok := enum.Detect([]any{1, 2, 3, 4}, func(v, _, _ any) bool {
		return v.(int) > 2
	})
	fmt.Println(first, ok)
	// Output: 3 true
}

func ExampleReduce() {
	sum := enum.Reduce([]any{1, 2, 3}, 0, func(memo, v, _, _ any) any {
		return memo.(int) + v.(int)
	})
	fmt.Println(sum)
	// Output: 6
}

func ExampleFlatten() {
	flat := enum.Flatten([]any{[]any{2, 4}, []any{[]any{6}, 8}})
	fmt.Println(flat)
	// Output: [2 4 6 8]
}

func ExampleTail() {
	fmt.Println(enum.Tail([]any{1, 2, 3, 4, 5}))
	fmt.Println(enum.Tail([]any{1, 2, 3, 4, 5}, 3))
	// Output:
	// [2 3 4 5]
	// [4 5]
}

func ExamplePluck() {
	people := []any{
		map[string]any{"name": "moe", "age": 40},
		map[string]any{"name": "larry", "age": 50},
	}
	fmt.Println(enum.Pluck(people, "name"))
	// Output: [moe larry]
}

func ExampleNewChain() {
	out := enum.NewChain([]any{1, 2, 3, 4}).
		Filter(func(v, _, _ any) bool { return v.(int)%2 == 0 }).
		Map(func(v, _, _ any) any { return v.(int) * 10 }).
		Values()
	fmt.Println(out)
	// Output: [20 40]
}
