package assistant

import (
	"fmt"
	"strings"
)

// MealPlanOptions carries the chips from the planner options form plus the
// context the prompt should build on.
type MealPlanOptions struct {
	Healthy     bool
	Cheap       bool
	Vegetarian  bool
	Vegan       bool
	Quick       bool
	PantryItems []string // non-empty when the plan should use the pantry
	CurrentPlan string   // existing plan text, if any
}

// Profile is the user data behind a calorie-goal calculation.
type Profile struct {
	Age             int
	Gender          string
	HeightCM        float64
	ActivityLevel   string
	CurrentWeightKG float64
	TargetWeightKG  float64
	TimeframeMonths float64
}

// BuildMealPlanPrompt renders a meal-plan request for the day.
func BuildMealPlanPrompt(opts MealPlanOptions) string {
	var b strings.Builder
	b.WriteString("Can you suggest a meal plan for the day by giving me suggestions on what to eat? ")
	b.WriteString("The meal plan should include breakfast, lunch, dinner. ")
	b.WriteString("Please just provide the meal plan and nothing else. ")

	if len(opts.PantryItems) > 0 {
		b.WriteString("I have the following items in my pantry: ")
		b.WriteString(strings.Join(opts.PantryItems, ", "))
		b.WriteString(". ")
	}

	var criteria []string
	for _, c := range []struct {
		on   bool
		name string
	}{
		{opts.Healthy, "healthy"},
		{opts.Cheap, "cheap"},
		{opts.Vegetarian, "vegetarian"},
		{opts.Vegan, "vegan"},
		{opts.Quick, "quick"},
	} {
		if c.on {
			criteria = append(criteria, c.name)
		}
	}
	if len(criteria) > 0 {
		b.WriteString("I want the meal plan to be ")
		b.WriteString(strings.Join(criteria, ", "))
		b.WriteString(". ")
	}

	if opts.CurrentPlan != "" {
		b.WriteString("The current meal plan is: ")
		b.WriteString(opts.CurrentPlan)
		b.WriteString(". You can use this as a starting point, make changes to it or scrap it entirely if it doesnt fit the criteria.")
	}

	return b.String()
}

// BuildShoppingListPrompt renders an ingredient-list request for a set of
// meal plans.
func BuildShoppingListPrompt(mealPlans string) string {
	return "Generate a shopping list of ingridients based on these meal plans: " +
		mealPlans +
		"Please only provide an itemised list of ingridients and nothing else."
}

// BuildCalorieGoalPrompt renders a daily-calorie-goal request for a profile.
// The reply is constrained to a bare numeric value.
func BuildCalorieGoalPrompt(p Profile) string {
	return fmt.Sprintf(
		"Calculate the daily calorie goal for a %d year old %s with a height of %g cm and an activity level of %s. "+
			"They are currently %g kg and the target weight is %g kg over a timeframe of %g months. "+
			"Please tailor your response in the format of only the numerical value of the daily calorie goal and nothing else.",
		p.Age, p.Gender, p.HeightCM, p.ActivityLevel, p.CurrentWeightKG, p.TargetWeightKG, p.TimeframeMonths,
	)
}
