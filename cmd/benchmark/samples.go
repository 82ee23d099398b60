package main

// Sample is a benchmark input text.
type Sample struct {
	Name string
	Text string
}

// Samples cover the input lengths the editor sends in practice.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "The meeting moved to Thursday because half the team is out on Wednesday.",
	},
	{
		Name: "short",
		Text: `Our onboarding flow asks for the same address twice: once on the signup page and again at checkout. Users notice, and support gets a steady trickle of tickets about it. Storing the first entry and prefilling the second form would remove the duplication without changing the data model.`,
	},
	{
		Name: "medium",
		Text: `Last quarter the search service answered ninety percent of queries in under two hundred milliseconds, but the slowest one percent took more than three seconds. Most of those slow queries share a pattern: they combine a broad keyword with a date filter spanning several years, which forces the index to scan far more documents than it returns.

We tried raising the cache size first. It helped repeated queries but did nothing for the long tail, since those queries are rarely repeated. The more promising direction is to partition the index by year so that a date filter can skip whole partitions. A prototype on last year's data cut the slowest queries to under eight hundred milliseconds.

The cost is a more complicated ingestion path and a migration that has to rebuild every partition once. I think it is worth it, but I would like a second opinion from someone who has operated the ingestion workers before we commit.`,
	},
	{
		Name: "long",
		Text: `The community garden on Elm Street started six years ago with four raised beds and a borrowed hose. Today it has forty beds, a tool shed built from reclaimed pallets, a rainwater collection system, and a waiting list that stretches into next spring. Most of the growth happened without a plan, which is part of its charm and part of its problem.

Water is the first issue. The rain barrels cover roughly a third of what the beds need in July and August, and the rest comes from a single city tap at the north corner. Gardeners at the south end carry watering cans across the whole lot, and the older members have said plainly that they cannot keep doing it. A second tap would cost about two thousand dollars according to the estimate the city sent in March.

Compost is the second issue. The bins fill faster than they break down, partly because people add woody stems that take a year to decompose. A simple sign explaining what goes in each bin, plus a shredder that members can borrow, would probably solve most of it.

The third issue is the waiting list itself. Some plots sit half used for an entire season while people who would tend them carefully wait. Other gardens in the city handle this with a short mid-season check: if a plot is clearly abandoned by July, it is offered to the next person on the list for the rest of the year.

None of these problems is urgent on its own, but together they explain why the last two work days drew fewer volunteers than the year before. The board will vote on all three proposals at the September meeting, and every member is welcome to attend and speak.`,
	},
}

// QualitySamples exercise specific behaviours of each action.
// Used by -quality mode to eyeball model output.
var QualitySamples = []Sample{
	{
		Name: "idiom",
		// Paraphrase and translate should not translate the idiom literally.
		Text: "We're not out of the woods yet, but the new release has taken a lot of pressure off the support team.",
	},
	{
		Name: "terse",
		// Expand has little to work with here.
		Text: "Deploy froze. Rolled back. Root cause pending.",
	},
	{
		Name: "numbers",
		// Summaries must keep the figures intact.
		Text: "Revenue grew 12% year over year to $4.3 million, while operating costs rose 18% to $3.1 million. Headcount stayed flat at 41. The board approved a hiring plan for six engineers in the second half.",
	},
	{
		Name: "names",
		// Proper nouns and product names should survive every action.
		Text: "Priya and Tomás presented the Kestrel dashboard to the Lisbon office on Monday; the feedback was mostly about load times on older laptops.",
	},
}
