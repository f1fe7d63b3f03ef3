/*
Package prediction scores one transaction submitted through the web form.

The service validates the raw form, builds the feature vector expected by
the fitted scaler and classifier, asks the scorer for a base fraud
probability and hands it to the scoring adjuster:

	svc := prediction.NewService(artifacts.Encoder, artifacts.Pipeline, logger, metrics)
	outcome, err := svc.Score(ctx, form)
	if err != nil {
	    msg := prediction.Message(err)
	}

Feature vector layout:

	[amount, PlaceholderFraudScore, one-hot(card type, bank, category, state)]

Error Handling:

  - *InputError: missing or malformed form fields (matches ErrInvalidInput)
  - *ml.UnknownCategoryError: value outside the trained vocabulary
  - *ml.FeatureShapeError: vector width differs from the fitted components

None of these are retried; callers render Message(err) in place of a result.
*/
package prediction
