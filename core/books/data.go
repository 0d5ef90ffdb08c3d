package books

// canonicalBooks lists the books in canon order. English abbreviations are
// OSIS book IDs.
var canonicalBooks = []Book{
	{EnglishName: "Genesis", EnglishAbbr: "Gen", SwedishName: "Första Moseboken", SwedishAbbr: "1 Mos",
		Aliases: []string{"gen", "genesis", "första moseboken", "1 mos", "1mos", "1 moseboken"}},
	{EnglishName: "Exodus", EnglishAbbr: "Exod", SwedishName: "Andra Moseboken", SwedishAbbr: "2 Mos",
		Aliases: []string{"exod", "exodus", "andra moseboken", "2 mos", "2mos", "2 moseboken"}},
	{EnglishName: "Leviticus", EnglishAbbr: "Lev", SwedishName: "Tredje Moseboken", SwedishAbbr: "3 Mos",
		Aliases: []string{"lev", "leviticus", "tredje moseboken", "3 mos", "3mos", "3 moseboken"}},
	{EnglishName: "Numbers", EnglishAbbr: "Num", SwedishName: "Fjärde Moseboken", SwedishAbbr: "4 Mos",
		Aliases: []string{"num", "numbers", "fjärde moseboken", "4 mos", "4mos", "4 moseboken"}},
	{EnglishName: "Deuteronomy", EnglishAbbr: "Deut", SwedishName: "Femte Moseboken", SwedishAbbr: "5 Mos",
		Aliases: []string{"deut", "deuteronomy", "femte moseboken", "5 mos", "5mos", "5 moseboken"}},
	{EnglishName: "Joshua", EnglishAbbr: "Josh", SwedishName: "Josua", SwedishAbbr: "Jos",
		Aliases: []string{"josh", "joshua", "jos", "josua"}},
	{EnglishName: "Judges", EnglishAbbr: "Judg", SwedishName: "Domarboken", SwedishAbbr: "Dom",
		Aliases: []string{"judg", "judges", "dom", "domarboken"}},
	{EnglishName: "Ruth", EnglishAbbr: "Ruth", SwedishName: "Rut", SwedishAbbr: "Rut",
		Aliases: []string{"ruth", "rut"}},
	{EnglishName: "1 Samuel", EnglishAbbr: "1Sam", SwedishName: "Första Samuelsboken", SwedishAbbr: "1 Sam",
		Aliases: []string{"1 sam", "1sam", "första samuelsboken", "1 samuelsboken", "first samuel", "1 samuel"}},
	{EnglishName: "2 Samuel", EnglishAbbr: "2Sam", SwedishName: "Andra Samuelsboken", SwedishAbbr: "2 Sam",
		Aliases: []string{"2 sam", "2sam", "andra samuelsboken", "2 samuelsboken", "second samuel", "2 samuel"}},
	{EnglishName: "1 Kings", EnglishAbbr: "1Kgs", SwedishName: "Första Kungaboken", SwedishAbbr: "1 Kung",
		Aliases: []string{"1 kgs", "1kgs", "första kungaboken", "1 kungaboken", "first kings", "1 kings", "1 kung"}},
	{EnglishName: "2 Kings", EnglishAbbr: "2Kgs", SwedishName: "Andra Kungaboken", SwedishAbbr: "2 Kung",
		Aliases: []string{"2 kgs", "2kgs", "andra kungaboken", "2 kungaboken", "second kings", "2 kings", "2 kung"}},
	{EnglishName: "1 Chronicles", EnglishAbbr: "1Chr", SwedishName: "Första Krönikeboken", SwedishAbbr: "1 Krön",
		Aliases: []string{"1 chr", "1chr", "första krönikeboken", "1 krönikeboken", "first chronicles", "1 chronicles", "1 krön"}},
	{EnglishName: "2 Chronicles", EnglishAbbr: "2Chr", SwedishName: "Andra Krönikeboken", SwedishAbbr: "2 Krön",
		Aliases: []string{"2 chr", "2chr", "andra krönikeboken", "2 krönikeboken", "second chronicles", "2 chronicles", "2 krön"}},
	{EnglishName: "Ezra", EnglishAbbr: "Ezra", SwedishName: "Esra", SwedishAbbr: "Esra",
		Aliases: []string{"ezra", "esra"}},
	{EnglishName: "Nehemiah", EnglishAbbr: "Neh", SwedishName: "Nehemja", SwedishAbbr: "Neh",
		Aliases: []string{"nehemiah", "nehemja", "neh"}},
	{EnglishName: "Esther", EnglishAbbr: "Esth", SwedishName: "Ester", SwedishAbbr: "Est",
		Aliases: []string{"esther", "esth", "ester", "est"}},
	{EnglishName: "Job", EnglishAbbr: "Job", SwedishName: "Job", SwedishAbbr: "Job",
		Aliases: []string{"job"}},
	{EnglishName: "Psalms", EnglishAbbr: "Ps", SwedishName: "Psaltaren", SwedishAbbr: "Ps",
		Aliases: []string{"ps", "psalms", "psalm", "psaltaren"}},
	{EnglishName: "Proverbs", EnglishAbbr: "Prov", SwedishName: "Ordspråksboken", SwedishAbbr: "Ords",
		Aliases: []string{"prov", "proverbs", "ords", "ordspråksboken"}},
	{EnglishName: "Ecclesiastes", EnglishAbbr: "Eccl", SwedishName: "Predikaren", SwedishAbbr: "Pred",
		Aliases: []string{"eccl", "ecclesiastes", "pred", "predikaren"}},
	{EnglishName: "Song of Songs", EnglishAbbr: "Song", SwedishName: "Höga Visan", SwedishAbbr: "HV",
		Aliases: []string{"song", "song of songs", "song of solomon", "höga visan", "hv"}},
	{EnglishName: "Isaiah", EnglishAbbr: "Isa", SwedishName: "Jesaja", SwedishAbbr: "Jes",
		Aliases: []string{"isa", "isaiah", "jes", "jesaja"}},
	{EnglishName: "Jeremiah", EnglishAbbr: "Jer", SwedishName: "Jeremia", SwedishAbbr: "Jer",
		Aliases: []string{"jer", "jeremiah", "jeremia"}},
	{EnglishName: "Lamentations", EnglishAbbr: "Lam", SwedishName: "Klagovisorna", SwedishAbbr: "Klag",
		Aliases: []string{"lam", "lamentations", "klag", "klagovisorna"}},
	{EnglishName: "Ezekiel", EnglishAbbr: "Ezek", SwedishName: "Hesekiel", SwedishAbbr: "Hes",
		Aliases: []string{"ezek", "ezekiel", "hes", "hesekiel"}},
	{EnglishName: "Daniel", EnglishAbbr: "Dan", SwedishName: "Daniel", SwedishAbbr: "Dan",
		Aliases: []string{"dan", "daniel"}},
	{EnglishName: "Hosea", EnglishAbbr: "Hos", SwedishName: "Hosea", SwedishAbbr: "Hos",
		Aliases: []string{"hos", "hosea"}},
	{EnglishName: "Joel", EnglishAbbr: "Joel", SwedishName: "Joel", SwedishAbbr: "Joel",
		Aliases: []string{"joel"}},
	{EnglishName: "Amos", EnglishAbbr: "Amos", SwedishName: "Amos", SwedishAbbr: "Am",
		Aliases: []string{"amos", "am"}},
	{EnglishName: "Obadiah", EnglishAbbr: "Obad", SwedishName: "Obadja", SwedishAbbr: "Ob",
		Aliases: []string{"obad", "obadiah", "obadja", "ob"}},
	{EnglishName: "Jonah", EnglishAbbr: "Jonah", SwedishName: "Jona", SwedishAbbr: "Jona",
		Aliases: []string{"jonah", "jona"}},
	{EnglishName: "Micah", EnglishAbbr: "Mic", SwedishName: "Mika", SwedishAbbr: "Mik",
		Aliases: []string{"mic", "micah", "mika", "mik"}},
	{EnglishName: "Nahum", EnglishAbbr: "Nah", SwedishName: "Nahum", SwedishAbbr: "Nah",
		Aliases: []string{"nah", "nahum"}},
	{EnglishName: "Habakkuk", EnglishAbbr: "Hab", SwedishName: "Habackuk", SwedishAbbr: "Hab",
		Aliases: []string{"hab", "habakkuk", "habackuk"}},
	{EnglishName: "Zephaniah", EnglishAbbr: "Zeph", SwedishName: "Sefanja", SwedishAbbr: "Sef",
		Aliases: []string{"zeph", "zephaniah", "sef", "sefanja"}},
	{EnglishName: "Haggai", EnglishAbbr: "Hag", SwedishName: "Haggaj", SwedishAbbr: "Hag",
		Aliases: []string{"hag", "haggai", "haggaj"}},
	{EnglishName: "Zechariah", EnglishAbbr: "Zech", SwedishName: "Sakarja", SwedishAbbr: "Sak",
		Aliases: []string{"zech", "zechariah", "sakarja", "sak"}},
	{EnglishName: "Malachi", EnglishAbbr: "Mal", SwedishName: "Malaki", SwedishAbbr: "Mal",
		Aliases: []string{"mal", "malachi", "malaki"}},
	{EnglishName: "Matthew", EnglishAbbr: "Matt", SwedishName: "Matteusevangeliet", SwedishAbbr: "Matt",
		Aliases: []string{"matt", "matthew", "matteus", "matteusevangeliet"}},
	{EnglishName: "Mark", EnglishAbbr: "Mark", SwedishName: "Markusevangeliet", SwedishAbbr: "Mark",
		Aliases: []string{"mark", "markus", "markusevangeliet"}},
	{EnglishName: "Luke", EnglishAbbr: "Luke", SwedishName: "Lukasevangeliet", SwedishAbbr: "Luk",
		Aliases: []string{"luke", "luk", "lukas", "lukasevangeliet"}},
	{EnglishName: "John", EnglishAbbr: "John", SwedishName: "Johannesevangeliet", SwedishAbbr: "Joh",
		Aliases: []string{"john", "joh", "johannes", "johannesevangeliet"}},
	{EnglishName: "Acts", EnglishAbbr: "Acts", SwedishName: "Apostlagärningarna", SwedishAbbr: "Apg",
		Aliases: []string{"acts", "apostlagärningarna", "apg"}},
	{EnglishName: "Romans", EnglishAbbr: "Rom", SwedishName: "Romarbrevet", SwedishAbbr: "Rom",
		Aliases: []string{"rom", "romans", "romarbrevet"}},
	{EnglishName: "1 Corinthians", EnglishAbbr: "1Cor", SwedishName: "Första Korinthierbrevet", SwedishAbbr: "1 Kor",
		Aliases: []string{"1cor", "1 cor", "första korinthierbrevet", "1 kor", "1kor", "first corinthians", "1 corinthians"}},
	{EnglishName: "2 Corinthians", EnglishAbbr: "2Cor", SwedishName: "Andra Korinthierbrevet", SwedishAbbr: "2 Kor",
		Aliases: []string{"2cor", "2 cor", "andra korinthierbrevet", "2 kor", "2kor", "second corinthians", "2 corinthians"}},
	{EnglishName: "Galatians", EnglishAbbr: "Gal", SwedishName: "Galaterbrevet", SwedishAbbr: "Gal",
		Aliases: []string{"gal", "galatians", "galaterbrevet"}},
	{EnglishName: "Ephesians", EnglishAbbr: "Eph", SwedishName: "Efesierbrevet", SwedishAbbr: "Ef",
		Aliases: []string{"eph", "ephesians", "ef", "efesierbrevet"}},
	{EnglishName: "Philippians", EnglishAbbr: "Phil", SwedishName: "Filipperbrevet", SwedishAbbr: "Fil",
		Aliases: []string{"phil", "philippians", "fil", "filipperbrevet"}},
	{EnglishName: "Colossians", EnglishAbbr: "Col", SwedishName: "Kolosserbrevet", SwedishAbbr: "Kol",
		Aliases: []string{"col", "colossians", "kol", "kolosserbrevet"}},
	{EnglishName: "1 Thessalonians", EnglishAbbr: "1Thess", SwedishName: "Första Thessalonikerbrevet", SwedishAbbr: "1 Thess",
		Aliases: []string{"1thess", "1 thess", "första thessalonikerbrevet", "1 thessalonikerbrevet", "first thessalonians", "1 thessalonians", "1thes", "1 thes"}},
	{EnglishName: "2 Thessalonians", EnglishAbbr: "2Thess", SwedishName: "Andra Thessalonikerbrevet", SwedishAbbr: "2 Thess",
		Aliases: []string{"2thess", "2 thess", "andra thessalonikerbrevet", "2 thessalonikerbrevet", "second thessalonians", "2 thessalonians", "2thes", "2 thes"}},
	{EnglishName: "1 Timothy", EnglishAbbr: "1Tim", SwedishName: "Första Timotheosbrevet", SwedishAbbr: "1 Tim",
		Aliases: []string{"1tim", "1 tim", "första timotheosbrevet", "1 timotheosbrevet", "first timothy", "1 timothy"}},
	{EnglishName: "2 Timothy", EnglishAbbr: "2Tim", SwedishName: "Andra Timotheosbrevet", SwedishAbbr: "2 Tim",
		Aliases: []string{"2tim", "2 tim", "andra timotheosbrevet", "2 timotheosbrevet", "second timothy", "2 timothy"}},
	{EnglishName: "Titus", EnglishAbbr: "Titus", SwedishName: "Titusbrevet", SwedishAbbr: "Tit",
		Aliases: []string{"titus", "tit", "titusbrevet"}},
	{EnglishName: "Philemon", EnglishAbbr: "Phlm", SwedishName: "Filemonbrevet", SwedishAbbr: "Film",
		Aliases: []string{"phlm", "philemon", "filemonbrevet", "filemon", "film"}},
	{EnglishName: "Hebrews", EnglishAbbr: "Heb", SwedishName: "Hebreerbrevet", SwedishAbbr: "Heb",
		Aliases: []string{"heb", "hebrews", "hebreerbrevet"}},
	{EnglishName: "James", EnglishAbbr: "Jas", SwedishName: "Jakobsbrevet", SwedishAbbr: "Jak",
		Aliases: []string{"jas", "james", "jak", "jakobsbrevet"}},
	{EnglishName: "1 Peter", EnglishAbbr: "1Pet", SwedishName: "Första Petrusbrevet", SwedishAbbr: "1 Pet",
		Aliases: []string{"1pet", "1 pet", "första petrusbrevet", "1 petrusbrevet", "first peter", "1 peter"}},
	{EnglishName: "2 Peter", EnglishAbbr: "2Pet", SwedishName: "Andra Petrusbrevet", SwedishAbbr: "2 Pet",
		Aliases: []string{"2pet", "2 pet", "andra petrusbrevet", "2 petrusbrevet", "second peter", "2 peter"}},
	{EnglishName: "1 John", EnglishAbbr: "1John", SwedishName: "Första Johannesbrevet", SwedishAbbr: "1 Joh",
		Aliases: []string{"1john", "1 john", "första johannesbrevet", "1 joh", "1joh", "first john"}},
	{EnglishName: "2 John", EnglishAbbr: "2John", SwedishName: "Andra Johannesbrevet", SwedishAbbr: "2 Joh",
		Aliases: []string{"2john", "2 john", "andra johannesbrevet", "2 joh", "2joh", "second john"}},
	{EnglishName: "3 John", EnglishAbbr: "3John", SwedishName: "Tredje Johannesbrevet", SwedishAbbr: "3 Joh",
		Aliases: []string{"3john", "3 john", "tredje johannesbrevet", "3 joh", "3joh", "third john"}},
	{EnglishName: "Jude", EnglishAbbr: "Jude", SwedishName: "Judasbrevet", SwedishAbbr: "Jud",
		Aliases: []string{"jude", "jud", "judasbrevet"}},
	{EnglishName: "Revelation", EnglishAbbr: "Rev", SwedishName: "Uppenbarelseboken", SwedishAbbr: "Upp",
		Aliases: []string{"rev", "revelation", "uppenbarelseboken", "upp"}},
}
