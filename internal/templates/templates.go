// Package templates provides the built-in note templates offered by the
// template picker when creating a document.
package templates

// Template seeds a new document with a title and starter content.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

var builtin = []Template{
	{
		ID:          "meeting-notes",
		Name:        "Meeting Notes",
		Description: "Standard template for team meetings with agenda and action items.",
		Content: `<h1>Meeting Notes</h1>
<p><strong>Date:</strong> [Date]</p>
<p><strong>Attendees:</strong> [Name 1], [Name 2]</p>
<h2>Agenda</h2>
<ul>
<li>Topic 1</li>
<li>Topic 2</li>
</ul>
<h2>Discussion Points</h2>
<p>Notes go here...</p>
<h2>Action Items</h2>
<ul>
<li>[ ] Task 1 (@Owner)</li>
<li>[ ] Task 2 (@Owner)</li>
</ul>`,
	},
	{
		ID:          "daily-journal",
		Name:        "Daily Journal",
		Description: "Track your daily progress, thoughts, and tasks.",
		Content: `<h1>Daily Journal</h1>
<h3>Mood / Energy</h3>
<p>How are you feeling today?</p>
<h3>Top 3 Priorities</h3>
<ol>
<li></li>
<li></li>
<li></li>
</ol>
<h3>Notes &amp; Reflections</h3>
<p>Write your thoughts here...</p>`,
	},
	{
		ID:          "project-plan",
		Name:        "Project Plan",
		Description: "Outline for a new project with goals and milestones.",
		Content: `<h1>Project Plan: [Project Name]</h1>
<h2>Overview</h2>
<p>Brief description of the project and its goals.</p>
<h2>Objectives</h2>
<ul>
<li>Goal 1</li>
<li>Goal 2</li>
</ul>
<h2>Milestones</h2>
<ul>
<li><strong>Phase 1:</strong> [Date] - Description</li>
<li><strong>Phase 2:</strong> [Date] - Description</li>
</ul>
<h2>Resources Needed</h2>
<p>What do we need to succeed?</p>`,
	},
	{
		ID:          "bug-report",
		Name:        "Bug Report",
		Description: "Structure for reporting technical issues.",
		Content: `<h1>Bug Report: [Issue Name]</h1>
<h3>Description</h3>
<p>What happened?</p>
<h3>Steps to Reproduce</h3>
<ol>
<li>Step 1</li>
<li>Step 2</li>
</ol>
<h3>Expected Behavior</h3>
<p>What should have happened?</p>
<h3>Actual Behavior</h3>
<p>What actually happened?</p>`,
	},
}

// All returns every built-in template.
func All() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// ByID returns the template with the given id, or false when none matches.
func ByID(id string) (Template, bool) {
	for _, t := range builtin {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
