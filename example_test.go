package statlearn_test

import (
	"context"
	"fmt"
	"log"

	"github.com/zibellina/statlearn"
)

func ExampleIndex_Nearest() {
	idx, err := statlearn.NewIndex([][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}})
	if err != nil {
		log.Fatal(err)
	}

	nn, err := idx.Nearest([]float64{6, 2.5})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v %.4f\n", nn.Point, nn.Distance)
	// Output: [7 2] 1.1180
}

func ExampleIndex_KNearest() {
	idx, err := statlearn.NewIndex([][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}})
	if err != nil {
		log.Fatal(err)
	}

	res, err := idx.KNearest([]float64{8.2, 2.9}, 3)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range res {
		fmt.Printf("%v %.4f\n", n.Point, n.Distance)
	}
	// Output:
	// [7 2] 1.5000
	// [8 1] 1.9105
	// [9 6] 3.2016
}

func ExampleTrainPerceptron() {
	X := [][]float64{{3, 3}, {4, 3}, {1, 1}}
	Y := []int{1, 1, -1}

	for _, form := range []statlearn.Form{statlearn.FormPrimal, statlearn.FormDual} {
		m, err := statlearn.TrainPerceptron(context.Background(), X, Y, form)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: w=%v b=%v epochs=%d updates=%d\n", form, m.Weights, m.Bias, m.Epochs, m.Updates)
	}
	// Output:
	// primal: w=[1 1] b=-3 epochs=3 updates=7
	// dual: w=[1 1] b=-3 epochs=3 updates=7
}

func ExampleKNNClassifier_Predict() {
	X := [][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
	Y := []int{0, 0, 1, 0, 1, 1}

	c, err := statlearn.NewKNNClassifier(X, Y, 3)
	if err != nil {
		log.Fatal(err)
	}

	label, err := c.Predict([]float64{8, 2})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(label)
	// Output: 1
}
