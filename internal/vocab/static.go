package vocab

// The built-in starter vocabulary. File-based sources loaded afterwards may
// overwrite individual translations (last write wins).
var defaults = []struct {
	category    string
	term        string
	translation string
}{
	{"greetings", "dzień dobry", "good day/hello"},
	{"greetings", "dobry wieczór", "good evening"},
	{"greetings", "cześć", "hi/hello"},
	{"greetings", "do widzenia", "goodbye"},
	{"greetings", "dziękuję", "thank you"},
	{"greetings", "proszę", "please/you're welcome"},
	{"greetings", "tak", "yes"},
	{"greetings", "nie", "no"},

	{"family", "mama", "mom"},
	{"family", "tata", "dad"},
	{"family", "syn", "son"},
	{"family", "córka", "daughter"},
	{"family", "brat", "brother"},
	{"family", "siostra", "sister"},
	{"family", "dziadek", "grandfather"},
	{"family", "babcia", "grandmother"},

	{"numbers", "jeden", "one"},
	{"numbers", "dwa", "two"},
	{"numbers", "trzy", "three"},
	{"numbers", "cztery", "four"},
	{"numbers", "pięć", "five"},
	{"numbers", "sześć", "six"},
	{"numbers", "siedem", "seven"},
	{"numbers", "osiem", "eight"},
	{"numbers", "dziewięć", "nine"},
	{"numbers", "dziesięć", "ten"},

	{"colors", "czerwony", "red"},
	{"colors", "niebieski", "blue"},
	{"colors", "zielony", "green"},
	{"colors", "żółty", "yellow"},
	{"colors", "czarny", "black"},
	{"colors", "biały", "white"},
	{"colors", "różowy", "pink"},
	{"colors", "fioletowy", "purple"},

	{"food", "chleb", "bread"},
	{"food", "mleko", "milk"},
	{"food", "woda", "water"},
	{"food", "mięso", "meat"},
	{"food", "ryba", "fish"},
	{"food", "jabłko", "apple"},
	{"food", "banan", "banana"},
	{"food", "ser", "cheese"},

	{"phrases", "jak się masz?", "how are you?"},
	{"phrases", "miło mi cię poznać", "nice to meet you"},
	{"phrases", "nie rozumiem", "I don't understand"},
	{"phrases", "mówisz po angielsku?", "do you speak English?"},
	{"phrases", "ile to kosztuje?", "how much does it cost?"},
	{"phrases", "gdzie jest toaleta?", "where is the bathroom?"},
}

// Default builds a store seeded with the built-in vocabulary and categories.
func Default() *Store {
	s := NewStore()
	for _, d := range defaults {
		s.AddOrUpdate(d.term, d.translation)
		s.AddCategoryTerm(d.category, d.term)
	}
	return s
}
