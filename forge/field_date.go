package forge

import "time"

// DateField is a date-typed schema field. Operator arguments accept
// time.Time values, RFC3339 strings, or date-typed dynamic values.
type DateField struct {
	Field
}

func newDateField(name, description string, defaultValue time.Time) *DateField {
	if defaultValue.IsZero() {
		defaultValue = time.Now().UTC()
	}
	return &DateField{Field{
		Name:        name,
		Key:         name,
		Description: description,
		Default:     defaultValue,
		Type:        FieldDate,
		Operators: map[string]OperatorDef{
			"any":       {Name: "any", Args: []OperatorArg{}, Description: "Match any date value", SkipTypecheck: true},
			"is_past":   {Name: "is in the past", Args: []OperatorArg{}, Description: "Date is in the past"},
			"is_future": {Name: "is in the future", Args: []OperatorArg{}, Description: "Date is in the future"},
			"days_ago": {Name: "days ago", Args: []OperatorArg{
				{Name: "days", Type: "number", Description: "Number of days ago that the date is equal to"},
			}},
			"less_than_days_ago": {Name: "is less than N days ago", Args: []OperatorArg{
				{Name: "days", Type: "number", Description: "Number of days ago that the date is less than or equal to"},
			}},
			"more_than_days_ago": {Name: "is more than N days ago", Args: []OperatorArg{
				{Name: "days", Type: "number", Description: "Number of days ago that the date is more than or equal to"},
			}},
			"days_from_now": {Name: "days from now", Args: []OperatorArg{
				{Name: "days", Type: "number", Description: "Number of days from now that the date is equal to"},
			}},
			"less_than_days_from_now": {Name: "is less than N days from now", Args: []OperatorArg{
				{Name: "days", Type: "number", Description: "Number of days from now that the date is less than or equal to"},
			}},
			"more_than_days_from_now": {Name: "is more than N days from now", Args: []OperatorArg{
				{Name: "days", Type: "number", Description: "Number of days from now that the date is more than or equal to"},
			}},
			"is_today":      {Name: "is today", Args: []OperatorArg{}, Description: "Date is today"},
			"is_this_week":  {Name: "is this week", Args: []OperatorArg{}, Description: "Date is in the current week"},
			"is_this_month": {Name: "is this month", Args: []OperatorArg{}, Description: "Date is in the current month"},
			"is_this_year":  {Name: "is this year", Args: []OperatorArg{}, Description: "Date is in the current year"},
			"is_next_week":  {Name: "is next week", Args: []OperatorArg{}, Description: "Date is in the next week"},
			"is_next_month": {Name: "is next month", Args: []OperatorArg{}, Description: "Date is in the next month"},
			"is_next_year":  {Name: "is next year", Args: []OperatorArg{}, Description: "Date is in the next year"},
			"is_last_week":  {Name: "is last week", Args: []OperatorArg{}, Description: "Date is in the previous week"},
			"is_last_month": {Name: "is last month", Args: []OperatorArg{}, Description: "Date is in the previous month"},
			"is_last_year":  {Name: "is last year", Args: []OperatorArg{}, Description: "Date is in the previous year"},
			"after": {Name: "after", Args: []OperatorArg{
				{Name: "date", Type: "date", Description: "Date that value must be after"},
			}},
			"on_or_after": {Name: "on or after", Args: []OperatorArg{
				{Name: "date", Type: "date", Description: "Date that value must be on or after"},
			}},
			"before": {Name: "before", Args: []OperatorArg{
				{Name: "date", Type: "date", Description: "Date that value must be before"},
			}},
			"on_or_before": {Name: "on or before", Args: []OperatorArg{
				{Name: "date", Type: "date", Description: "Date that value must be on or before"},
			}},
			"between": {Name: "between", Args: []OperatorArg{
				{Name: "start", Type: "date", Description: "Date that value must be after", Placeholder: "From"},
				{Name: "end", Type: "date", Description: "Date that value must be before", Placeholder: "To"},
			}},
			"not_between": {Name: "not between", Args: []OperatorArg{
				{Name: "start", Type: "date", Description: "Date that value must be before", Placeholder: "From"},
				{Name: "end", Type: "date", Description: "Date that value must be after", Placeholder: "To"},
			}},
		},
	}}
}

// IsPast matches dates before now.
func (f *DateField) IsPast() OperatorResult {
	return unaryOp("is in the past")
}

// IsFuture matches dates after now.
func (f *DateField) IsFuture() OperatorResult {
	return unaryOp("is in the future")
}

// DaysAgo matches dates exactly the given number of days in the past.
func (f *DateField) DaysAgo(days any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "days_ago", "days ago", days, ValueNumber)
}

// LessThanDaysAgo matches dates at most the given number of days in the
// past.
func (f *DateField) LessThanDaysAgo(days any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "less_than_days_ago", "is less than N days ago", days, ValueNumber)
}

// MoreThanDaysAgo matches dates at least the given number of days in the
// past.
func (f *DateField) MoreThanDaysAgo(days any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "more_than_days_ago", "is more than N days ago", days, ValueNumber)
}

// DaysFromNow matches dates exactly the given number of days ahead.
func (f *DateField) DaysFromNow(days any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "days_from_now", "days from now", days, ValueNumber)
}

// LessThanDaysFromNow matches dates at most the given number of days ahead.
func (f *DateField) LessThanDaysFromNow(days any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "less_than_days_from_now", "is less than N days from now", days, ValueNumber)
}

// MoreThanDaysFromNow matches dates at least the given number of days
// ahead.
func (f *DateField) MoreThanDaysFromNow(days any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "more_than_days_from_now", "is more than N days from now", days, ValueNumber)
}

// IsToday matches today's dates.
func (f *DateField) IsToday() OperatorResult {
	return unaryOp("is today")
}

// IsThisWeek matches dates in the current week.
func (f *DateField) IsThisWeek() OperatorResult {
	return unaryOp("is this week")
}

// IsThisMonth matches dates in the current month.
func (f *DateField) IsThisMonth() OperatorResult {
	return unaryOp("is this month")
}

// IsThisYear matches dates in the current year.
func (f *DateField) IsThisYear() OperatorResult {
	return unaryOp("is this year")
}

// IsNextWeek matches dates in the next week.
func (f *DateField) IsNextWeek() OperatorResult {
	return unaryOp("is next week")
}

// IsNextMonth matches dates in the next month.
func (f *DateField) IsNextMonth() OperatorResult {
	return unaryOp("is next month")
}

// IsNextYear matches dates in the next year.
func (f *DateField) IsNextYear() OperatorResult {
	return unaryOp("is next year")
}

// IsLastWeek matches dates in the previous week.
func (f *DateField) IsLastWeek() OperatorResult {
	return unaryOp("is last week")
}

// IsLastMonth matches dates in the previous month.
func (f *DateField) IsLastMonth() OperatorResult {
	return unaryOp("is last month")
}

// IsLastYear matches dates in the previous year.
func (f *DateField) IsLastYear() OperatorResult {
	return unaryOp("is last year")
}

// After matches dates strictly after the given date.
func (f *DateField) After(date any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "after", "after", date, ValueDate)
}

// OnOrAfter matches dates at or after the given date.
func (f *DateField) OnOrAfter(date any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "on_or_after", "on or after", date, ValueDate)
}

// Before matches dates strictly before the given date.
func (f *DateField) Before(date any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "before", "before", date, ValueDate)
}

// OnOrBefore matches dates at or before the given date.
func (f *DateField) OnOrBefore(date any) (OperatorResult, error) {
	return singleArgOp(FieldDate, "on_or_before", "on or before", date, ValueDate)
}

// Between matches dates inside the given range.
func (f *DateField) Between(start, end any) (OperatorResult, error) {
	return pairArgOp(FieldDate, "between", "between", start, end, ValueDate)
}

// NotBetween matches dates outside the given range.
func (f *DateField) NotBetween(start, end any) (OperatorResult, error) {
	return pairArgOp(FieldDate, "not_between", "not between", start, end, ValueDate)
}
