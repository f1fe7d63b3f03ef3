// Command artifact_check loads the model artifacts the server would load,
// prints their vocabulary and widths, and optionally scores one sample
// transaction.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"fraudcheck/internal/config"
	"fraudcheck/internal/logging"
	"fraudcheck/internal/services/ml"
	"fraudcheck/internal/services/prediction"
	"fraudcheck/internal/validation"
)

func main() {
	config.LoadEnv()

	dir := flag.String("dir", config.GetEnv("MODEL_DIR", "./artifacts"), "model artifact directory")
	amount := flag.String("amount", "", "sample amount to score (optional)")
	cardType := flag.String("card-type", "", "sample card type")
	bank := flag.String("bank", "", "sample bank")
	category := flag.String("category", "", "sample transaction category")
	state := flag.String("state", "", "sample state")
	names := flag.Bool("names", false, "print one-hot feature names")
	flag.Parse()

	log := logging.New(config.GetEnv("LOG_LEVEL", "warn"), "text")

	artifacts, err := ml.LoadArtifacts(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "artifact check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ artifacts in %s are consistent\n", *dir)
	fmt.Printf("features: %d (%d numeric + %d one-hot)\n",
		artifacts.Pipeline.Width(), ml.NumericFeatures, artifacts.Encoder.Width())
	for _, f := range artifacts.Encoder.Vocabulary() {
		fmt.Printf("  %s (%d): %s\n", f.Name, len(f.Categories), strings.Join(f.Categories, ", "))
	}
	if *names {
		for _, n := range artifacts.Encoder.FeatureNames() {
			fmt.Println("  " + n)
		}
	}

	if *amount == "" {
		return
	}

	svc := prediction.NewService(artifacts.Encoder, artifacts.Pipeline, log, nil)
	outcome, err := svc.Score(context.Background(), validation.PredictionForm{
		Amount:   *amount,
		CardType: *cardType,
		Bank:     *bank,
		Category: *category,
		State:    *state,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, prediction.Message(err))
		os.Exit(1)
	}

	res := outcome.Result
	fmt.Printf("base probability: %.4f\n", res.BaseProbability)
	fmt.Printf("risk: %s%% %s (%s)\n", res.RiskPercent.StringFixed(2), res.RiskLevel, res.Prediction)
	fmt.Println(res.Advice)
	for _, insight := range res.Insights {
		fmt.Println("  - " + insight)
	}
}
