package lexicon

import "github.com/poiesic/scenic/core"

// RussianDefinition returns the built-in Russian lexicon definition.
// Stems are cut to the shortest form that stays unambiguous with up to
// four inflection runes.
func RussianDefinition() Definition {
	return Definition{
		Language:      "ru",
		MaxStemSuffix: 4,
		VisualCategories: map[string][]string{
			"color": {
				"красн*", "алый", "алая", "алое", "алые", "багров*", "син*", "голуб*", "лазурн*",
				"зелен*", "зелён*", "изумрудн*", "жёлт*", "желт*", "золот*", "янтарн*", "бел*",
				"черн*", "чёрн*", "серый", "серая", "серое", "серые", "серого", "серебр*",
				"фиолетов*", "лилов*", "розов*", "коричнев*", "бурый", "бурая", "оранжев*",
				"бледн*", "темн*", "тёмн*", "светл*", "медн*", "пёстр*", "пестр*",
			},
			"light": {
				"свет", "света", "светом", "тень", "тени", "тенью", "сиян*", "сиял*", "блест*",
				"блеск*", "мерца*", "сверка*", "луч", "лучи", "лучей", "сумрак*", "сумерк*",
				"мрак*", "рассвет*", "закат*", "полумрак*", "лампад*", "свеч*", "огон*", "огн*",
				"отблеск*", "зарев*", "туманн*",
			},
			"texture": {
				"шершав*", "гладк*", "мягк*", "бархат*", "шелков*", "грубый", "груб*", "потёрт*",
				"потерт*", "мшист*", "трещин*", "хрупк*", "влажн*", "мокр*", "пыльн*", "ржав*",
				"шероховат*",
			},
			"form": {
				"высок*", "огромн*", "громадн*", "узк*", "широк*", "кругл*", "изогнут*", "стройн*",
				"массивн*", "крошечн*", "маленьк*", "длинн*", "низк*", "крут*", "островерх*",
			},
			"material": {
				"камен*", "кам*", "дерев*", "бревен*", "кирпич*", "мрамор*", "гранит*", "желез*",
				"стальн*", "стекл*", "хрустал*", "дубов*", "сосн*", "глин*", "кожан*", "льнян*",
				"шерст*", "бронз*",
			},
			"nature": {
				"деревья", "лес", "леса", "лесу", "лесной", "лесная", "лист*", "трав*", "луг*",
				"пол*", "холм*", "гор*", "рек*", "ручей", "ручья", "озер*", "озёр*", "мор*",
				"берег*", "скал*", "долин*", "сад", "сада", "саду", "цвет*", "роз*", "папорот*",
				"камыш*", "песок", "песк*", "снег*", "лёд", "льд*", "иней", "инея", "вод*",
			},
			"sky": {
				"неб*", "облак*", "туман*", "дожд*", "ветер", "ветр*", "бур*", "солнц*", "лун*",
				"звезд*", "звёзд*", "горизонт*",
			},
			"space": {
				"зал*", "комнат*", "коридор*", "окн*", "окон", "стен*", "крыш*", "двер*",
				"ворот*", "лестниц*", "потол*", "пол", "пола", "полу", "покой", "покои", "двор*",
				"улиц*", "площад*", "мост*", "колонн*", "балкон*", "башн*",
			},
		},
		DescriptiveMarkers: []string{
			"был", "была", "было", "были", "казался", "казалась", "казалось", "казались",
			"напоминал", "напоминала", "напоминало", "виднелся", "виднелась", "виднелось",
			"стоял", "стояла", "стояло", "лежал", "лежала", "лежало", "возвышался", "возвышалась",
			"простирался", "простиралась", "тянулся", "тянулась", "словно", "будто", "как",
		},
		ActionMarkers: []string{
			"побежал", "побежала", "бросился", "бросилась", "схватил", "схватила", "крикнул",
			"крикнула", "ударил", "ударила", "прыгнул", "прыгнула", "выстрелил", "рванулся",
			"толкнул", "закричал", "закричала", "кинулся", "кинулась", "помчался", "помчалась",
		},
		StopSignals: []string{
			"вдруг", "внезапно", "неожиданно", "в этот момент", "тем временем", "в ту же минуту",
		},
		ContinuationSignals: []string{
			"также", "рядом", "вдали", "вокруг", "там", "здесь", "над", "под", "за", "справа",
			"слева", "дальше", "позади", "впереди", "и", "кроме того", "чуть поодаль",
			"по ту сторону", "в глубине",
		},
		Pronouns: []string{
			"он", "она", "оно", "они", "его", "её", "ее", "их", "этот", "эта", "это", "эти",
			"тот", "та", "те",
		},
		TypeIndicators: map[core.DescriptionType][]string{
			core.DescriptionTypeLocation: {
				"комнат*", "зал*", "дом*", "замк*", "замок", "город*", "улиц*", "деревн*", "сел*",
				"лес", "леса", "лесу", "пол*", "долин*", "рек*", "гор*", "сад", "сада", "саду",
				"дорог*", "площад*", "мост*", "башн*", "церк*", "храм*", "дворц*", "дворец",
				"двор*", "берег*", "пейзаж*", "горизонт*", "здани*", "стен*", "окн*", "ворот*",
				"троп*", "подвал*", "библиотек*", "рын*", "остров*",
			},
			core.DescriptionTypeCharacter: {
				"лиц*", "глаз*", "волос*", "губ*", "нос", "носа", "щёк*", "щек*", "бров*", "рук*",
				"пальц*", "плеч*", "фигур*", "бород*", "улыб*", "взгляд*", "голос*", "кож*",
				"плать*", "пальто", "плащ*", "сапог*", "шляп*", "женщин*", "мужчин*", "девушк*",
				"юнош*", "незнаком*", "морщин*", "осанк*", "лоб", "лба",
			},
			core.DescriptionTypeAtmosphere: {
				"тишин*", "тих*", "безмолв*", "покой", "настроени*", "мрачн*", "тоск*", "спокойн*",
				"мир", "напряжени*", "страх*", "ужас*", "тайн*", "таинствен*", "жутк*", "торжествен*",
				"уют*", "тепл*", "холод*", "одиночеств*", "печал*", "радост*", "безмятеж*",
				"зловещ*", "запах*", "аромат*", "воздух*",
			},
			core.DescriptionTypeObject: {
				"меч*", "книг*", "ящик*", "сундук*", "стол*", "стул*", "кресл*", "ламп*", "зеркал*",
				"кольц*", "ключ*", "чаш*", "бутыл*", "час*", "письм*", "карт*", "картин*",
				"портрет*", "ваз*", "ковр*", "ковёр", "свеч*", "драгоцен*", "корон*", "нож*",
				"сумк*", "стату*", "кроват*", "полк*",
			},
		},
		Adjectives: []string{
			"старый", "старая", "старое", "древн*", "нов*", "молод*", "тих*", "холодн*", "тёпл*",
			"тяжел*", "тяжёл*", "пуст*", "глубок*", "густ*", "тонк*", "остр*", "странн*",
			"красив*", "одинок*", "нежн*", "свеж*", "слаб*", "далёк*", "далек*", "велик*",
		},
		AdjectiveSuffixes: []string{
			"ый", "ий", "ой", "ая", "яя", "ое", "ее", "ые", "ие", "ого", "его", "ому", "ему",
			"ыми", "ими", "ую", "юю",
		},
		VerbSuffixes: []string{"ть", "ться", "лся", "лась", "лось", "лись", "ал", "ял", "ил", "ела", "ала", "ила"},
		StopWords: []string{
			"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а", "то", "все",
			"она", "так", "его", "но", "да", "ты", "к", "у", "же", "вы", "за", "бы", "по",
			"только", "ее", "её", "мне", "было", "вот", "от", "меня", "еще", "ещё", "нет", "о",
			"из", "ему", "теперь", "когда", "даже", "ну", "ли", "если", "уже", "или", "ни",
			"быть", "был", "него", "до", "вас", "нибудь", "опять", "уж", "вам", "ведь", "там",
			"потом", "себя", "ничего", "ей", "может", "они", "тут", "где", "есть", "надо", "ней",
			"для", "мы", "тебя", "их", "чем", "была", "сам", "чтоб", "без", "будто", "чего",
			"раз", "тоже", "себе", "под", "будет", "ж", "тогда", "кто", "этот", "того", "потому",
			"этого", "какой", "совсем", "ним", "здесь", "этом", "один", "почти", "мой", "тем",
			"чтобы", "нее", "были", "куда", "зачем", "всех", "никогда", "можно", "при", "об",
			"над", "это", "эти", "та", "те",
		},
		PlaceKeywords: []string{
			"город*", "деревн*", "сел*", "улиц*", "рек*", "гор*", "замок", "замк*", "лес",
			"леса", "лесу", "царств*", "королевств*", "дорог*", "озер*", "мор*", "стран*",
			"столиц*", "проспект*", "площад*", "гаван*", "долин*", "губерни*", "уезд*",
		},
		NameTitles: []string{
			"господин", "госпожа", "граф", "графиня", "князь", "княгиня", "барон", "баронесса",
			"капитан", "доктор", "профессор", "царь", "царица", "король", "королева", "дядя", "тётя",
		},
		NameSuffixes:    []string{"ович", "евич", "овна", "евна", "ична", "инична"},
		DialogueOpeners: []string{"—", "–", "-", `"`, "«", "“", "„"},
		HeadingPatterns: []string{
			`(?i)^(глава|часть|книга)\s+([0-9]+|[ivxlcdm]+|\p{L}+)`,
			`^[IVXLCDM]+\.?$`,
			`^\*(\s*\*){2,}$`,
		},
		EpigraphPatterns: []string{`(?i)^эпиграф`},
		Antipatterns: []string{
			`^\d+$`,
			`(?i)^(copyright|isbn|все права защищены)`,
			`^©`,
			`(?i)^(страница|стр\.)\s*\d+`,
			`^[\p{P}\p{S}\s]+$`,
		},
	}
}
