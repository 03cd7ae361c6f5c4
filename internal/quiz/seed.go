package quiz

// SeedQuestions returns the built-in bank used when no other source is configured.
func SeedQuestions() []Question {
	return []Question{
		{
			ID:           1,
			Title:        "Which keyword declares a read-only variable in Kotlin?",
			Options:      []string{"var", "val", "let", "const"},
			CorrectIndex: 1,
		},
		{
			ID:           2,
			Title:        "In Jetpack Compose, which annotation marks a function as UI?",
			Options:      []string{"@UI", "@Widget", "@Composable", "@Compose"},
			CorrectIndex: 2,
		},
		{
			ID:           3,
			Title:        "Which component renders efficient scrollable lists?",
			Options:      []string{"Column", "RecyclerView", "Stack", "LazyColumn"},
			CorrectIndex: 3,
		},
		{
			ID:           4,
			Title:        "What restores state after an Activity is recreated?",
			Options:      []string{"intentData", "savedInstanceState", "activityState", "bundleConfig"},
			CorrectIndex: 1,
		},
	}
}
