package gazetteer

// EnglishGazetteer returns the built-in gazetteer of names that show up
// constantly in English-language news. Deployments extend or replace it
// via LoadGazetteer.
func EnglishGazetteer() Gazetteer {
	return Gazetteer{
		Persons: []string{
			"Elon Musk", "Tim Cook", "Sundar Pichai", "Satya Nadella",
			"Jensen Huang", "Sam Altman", "Mark Zuckerberg", "Jeff Bezos",
			"Warren Buffett", "Janet Yellen", "Jerome Powell", "Christine Lagarde",
		},
		Organizations: []string{
			"NASA", "Google", "Microsoft", "Apple", "Amazon", "Meta", "OpenAI",
			"Nvidia", "Tesla", "SpaceX", "Intel", "IBM", "Netflix", "Samsung",
			"Boeing", "Airbus", "Pfizer", "Moderna", "Goldman Sachs",
			"JPMorgan", "Federal Reserve", "European Union", "United Nations",
			"World Bank", "IMF", "WHO", "NATO", "SEC", "FDA",
		},
		Places: []string{
			"United States", "China", "Russia", "India", "Japan", "Germany",
			"France", "Brazil", "United Kingdom", "Ukraine", "Israel", "Iran",
			"Taiwan", "Europe", "Washington", "New York", "London", "Paris",
			"Berlin", "Beijing", "Tokyo", "Moscow", "Brussels", "Silicon Valley",
			"California", "Texas", "Mars",
		},
	}
}
