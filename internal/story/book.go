package story

// The built-in book: a Ukrainian bedtime story about three rescue-vehicle
// sisters. Hotspot geometry matches the shipped chapter illustrations.

var bookChapters = []Chapter{
	{
		ID:      0,
		Title:   "Знайомство з машинками",
		Content: "Жили-були три машинки в одному великому і теплому гаражі. Вони були найкращими друзями та справжніми сестричками.",
	},
	{
		ID:      1,
		Title:   "Поліцейська машинка",
		Content: "Старша машинка була поліцейською. Вона дуже любила допомагати людям. Цілий день вона їздила по вулицях, слідкувала за порядком, дивилася, щоб ніхто нікого не ображав, щоб ніхто нікому не заважав. Усі її любили, усі її поважали.",
	},
	{
		ID:      2,
		Title:   "Пожежна машинка",
		Content: "Середня машинка була пожежною. І ця машинка теж любила допомагати людям.\n\nЯкщо десь траплялася пожежа, вона швидко приїжджала та гасила вогонь. А якщо хтось заліз, наприклад, на дерево і не міг злізти, то пожежна машинка також приїжджала зі своєю великою драбиною та допомагала.",
	},
	{
		ID:      3,
		Title:   "Швидка допомога",
		Content: "А наймолодша сестричка була швидкою допомогою. Швидка допомога теж дуже любила допомагати людям.\n\nКоли хтось захворів, вона могла приїхати до людини, привезти лікаря або відвезти хворого до лікарні. Усі три машинки жили дружно у своєму великому гаражі.",
	},
	{
		ID:      4,
		Title:   "Один зимовий вечір",
		Content: "Якось одного дня поліцейська машинка була на роботі. Швидка допомога готувала вечерю. А пожежна машинка займалася домашніми справами.\n\nРаптом пожежній машинці знадобилося взяти якісь інструменти на роботі. Вона нічого не сказала швидкій допомозі, а просто поїхала.\n\n«Я зараз швиденько туди заїду і назад повернуся», — подумала вона.",
	},
	{
		ID:      5,
		Title:   "Біда в лісі",
		Content: "Поїхала пожежна машинка по дорозі через ліс. Уже вечоріло, було холодно, надворі стояла зима.\n\nВона так швидко їхала, що в лісі наїхала на якусь гостру гілку і пробила колесо. Колесо зламалося!\n\nПожежна машинка дуже переживала. Уже було темно, уже настав вечір, нікого на дорозі не було, ніхто не міг їй допомогти. А вона нікому не сказала, куди поїхала. Ніхто про це не знав.",
	},
	{
		ID:      6,
		Title:   "Де пожежна машинка?",
		Content: "Поліцейська машинка приїхала додому. Швидка допомога вже приготувала вечерю.\n\n«Пожежна машинко! Пожежна машинко! Ти де? Ходи до нас, будемо вечеряти!» — гукали вони.\n\nА пожежна машинка не відповідала. Вони почали її шукати, але пожежної машинки ніде не було. Обшукали весь гараж, усі місця — а її ніде немає!",
	},
	{
		ID:      7,
		Title:   "Пошуки починаються",
		Content: "Що робити? Поліцейська машинка поїздила навколо гаража, пошукала-пошукала — і ніде не знайшла.\n\nТоді поліцейська машинка вирішила покликати на допомогу своїх друзів. Оскільки вона любила допомагати всім-всім-всім, у неї було багато друзів.\n\nСеред них були і літаки, і гвинтокрили, які теж працювали в поліції. Усі вони швидко прилетіли допомогти.",
	},
	{
		ID:      8,
		Title:   "Пошуки з неба",
		Content: "Літаки та гвинтокрили злетіли в небо і почали шукати пожежну машинку. Вони шукали її скрізь: біля гаража, в місті, на дорозі — і ніде не могли знайти.\n\nІ ось один із гвинтокрилів полетів далі, в ліс. Він летів уздовж дороги, світив своїм прожектором, шукав пожежну машинку, яка загубилася.",
	},
	{
		ID:      9,
		Title:   "Знайшли!",
		Content: "Пожежна машинка почула гул від гвинтокрила. Вона увімкнула свої сирени, увімкнула свої червоні маячки і почала сигналити, щоб гвинтокрил її швидше побачив.\n\nГвинтокрил побачив світло від пожежної машинки, побачив її мигалки та підлетів до неї.\n\n«Пожежна машинко, що ти тут робиш? Чому ти тут, а не вдома з братиком та сестричкою?» — запитав він.",
	},
	{
		ID:      10,
		Title:   "Історія пожежної машинки",
		Content: "Пожежна машинка розповіла, що поїхала за інструментами і їхала так швидко, що в неї зламалося колесо.\n\n«Тепер я застрягла тут у лісі. Мені потрібна допомога — треба, щоб приїхав евакуатор та відремонтував колесо. Тоді я зможу знову їхати», — сказала вона.",
	},
	{
		ID:      11,
		Title:   "Порятунок",
		Content: "Гвинтокрил полетів назад до поліцейської машинки і розповів їй цю історію.\n\nПоліцейська машинка швидко знайшла евакуатора. Вони взяли запасне колесо, взяли інструменти, і поліцейська машинка з евакуатором поїхали рятувати пожежну машинку.\n\nВони приїхали в ліс, де стояла пожежна машинка.",
	},
	{
		ID:      12,
		Title:   "Радісна зустріч",
		Content: "Пожежна машинка дуже зраділа, побачивши свого братика та евакуатора!\n\nПоліцейська машинка напоїла пожежну машинку теплим чаєм, укрила ковдрою, а евакуатор дуже швидко відремонтував колесо.\n\nІ пожежна машинка знову змогла їхати!",
	},
	{
		ID:      13,
		Title:   "Святкова вечеря",
		Content: "Друзі всі разом поїхали в гараж, де на них чекала ще тепла вечеря.\n\nШвидка допомога запросила всіх до столу: і літаків, і гвинтокрилів, і евакуатора — усіх-усіх-усіх!\n\nУсі дуже раділи, що знайшли пожежну машинку так швидко. Бо ночувати в лісі, коли холодно і темно, дуже неприємно і страшно.",
	},
	{
		ID:      14,
		Title:   "Важливий урок",
		Content: "Швидка допомога трішки посварила пожежну машинку. Усі розуміли, що таке буває, що таке трапляється.\n\nАле сказали: «Наступного разу, коли ти будеш кудись їхати, обов'язково скажи своїм братику та сестричці, щоб вони знали, де тебе шукати».\n\nПожежна машинка ще раз усім подякувала. Їй теж дуже не хотілося ночувати в лісі. Вона пообіцяла більше ніколи не їхати нікуди, нікому не сказавши.\n\nІ з того дня три машинки жили ще дружніше. Вони завжди казали одна одній, куди їдуть, і завжди допомагали одна одній.\n\nБо справжні друзі та справжня родина — це ті, хто завжди поруч і завжди готовий прийти на допомогу.",
	},
}

var bookHotspots = map[int][]Hotspot{
	0: {
		{ID: "police-1", X: 15, Y: 40, Width: 20, Height: 30, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "fire-1", X: 40, Y: 40, Width: 20, Height: 30, Character: Fire, SoundEffect: "fire-siren.mp3"},
		{ID: "ambulance-1", X: 65, Y: 40, Width: 20, Height: 30, Character: Ambulance, SoundEffect: "ambulance-siren.mp3"},
	},
	1: {
		{ID: "police-2", X: 15, Y: 35, Width: 30, Height: 40, Character: Police, SoundEffect: "police-siren.mp3"},
	},
	2: {
		{ID: "fire-2", X: 15, Y: 50, Width: 30, Height: 40, Character: Fire, SoundEffect: "fire-siren.mp3"},
	},
	3: {
		{ID: "ambulance-2", X: 35, Y: 35, Width: 30, Height: 40, Character: Ambulance, SoundEffect: "ambulance-siren.mp3"},
	},
	4: {
		{ID: "ambulance-3", X: 20, Y: 45, Width: 20, Height: 25, Character: Ambulance, SoundEffect: "ambulance-siren.mp3"},
		{ID: "fire-3", X: 60, Y: 45, Width: 20, Height: 25, Character: Fire, SoundEffect: "fire-siren.mp3"},
	},
	5: {
		{ID: "fire-4", X: 18, Y: 40, Width: 30, Height: 35, Character: Fire, SoundEffect: "fire-siren.mp3"},
	},
	6: {
		{ID: "police-3", X: 35, Y: 45, Width: 20, Height: 25, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "ambulance-4", X: 65, Y: 45, Width: 20, Height: 25, Character: Ambulance, SoundEffect: "ambulance-siren.mp3"},
	},
	7: {
		{ID: "police-4", X: 55, Y: 60, Width: 20, Height: 25, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "helicopter-1", X: 50, Y: 10, Width: 25, Height: 25, Character: Helicopter, SoundEffect: "helicopter.mp3"},
	},
	8: {
		{ID: "helicopter-2", X: 55, Y: 25, Width: 30, Height: 30, Character: Helicopter, SoundEffect: "helicopter.mp3"},
	},
	9: {
		{ID: "fire-5", X: 35, Y: 55, Width: 25, Height: 30, Character: Fire, SoundEffect: "fire-siren.mp3"},
		{ID: "helicopter-3", X: 50, Y: 15, Width: 25, Height: 25, Character: Helicopter, SoundEffect: "helicopter.mp3"},
	},
	10: {
		{ID: "fire-6", X: 20, Y: 50, Width: 25, Height: 30, Character: Fire, SoundEffect: "fire-siren.mp3"},
		{ID: "helicopter-4", X: 55, Y: 25, Width: 20, Height: 20, Character: Helicopter, SoundEffect: "helicopter.mp3"},
	},
	11: {
		{ID: "police-5", X: 15, Y: 60, Width: 20, Height: 25, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "tow-1", X: 40, Y: 50, Width: 20, Height: 25, Character: Tow, SoundEffect: "truck-horn.mp3"},
	},
	12: {
		{ID: "police-6", X: 15, Y: 60, Width: 18, Height: 23, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "fire-7", X: 35, Y: 50, Width: 20, Height: 30, Character: Fire, SoundEffect: "fire-siren.mp3"},
		{ID: "tow-2", X: 62, Y: 50, Width: 18, Height: 23, Character: Tow, SoundEffect: "truck-horn.mp3"},
	},
	13: {
		{ID: "police-7", X: 17, Y: 50, Width: 15, Height: 20, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "fire-8", X: 33, Y: 40, Width: 15, Height: 20, Character: Fire, SoundEffect: "fire-siren.mp3"},
		{ID: "ambulance-5", X: 52, Y: 40, Width: 15, Height: 20, Character: Ambulance, SoundEffect: "ambulance-siren.mp3"},
		{ID: "helicopter-5", X: 70, Y: 48, Width: 15, Height: 18, Character: Helicopter, SoundEffect: "helicopter.mp3"},
	},
	14: {
		{ID: "police-8", X: 20, Y: 50, Width: 18, Height: 25, Character: Police, SoundEffect: "police-siren.mp3"},
		{ID: "fire-9", X: 45, Y: 45, Width: 18, Height: 25, Character: Fire, SoundEffect: "fire-siren.mp3"},
		{ID: "ambulance-6", X: 67, Y: 60, Width: 18, Height: 25, Character: Ambulance, SoundEffect: "ambulance-siren.mp3"},
	},
}

var bookDialogues = map[int]map[Character]string{
	0: {
		Police:    "Привіт, {childName}! Я поліцейська машинка, найстарша сестричка! Я допомагаю людям і слідкую за порядком!",
		Fire:      "Привіт, {childName}! Я пожежна машинка! Я гашу пожежі та рятую людей!",
		Ambulance: "Привіт, {childName}! Я швидка допомога, наймолодша сестричка! Я допомагаю хворим!",
	},
	1: {
		Police: "{childName}, дивись як я їжджу по місту! Я допомагаю всім людям та слідкую, щоб всі були у безпеці!",
	},
	2: {
		Fire: "{childName}, якщо десь пожежа, я швидко приїжджаю! Дивись, у мене є велика драбина!",
	},
	3: {
		Ambulance: "{childName}, коли хтось захворів, я можу швидко привезти лікаря! Я завжди готова допомогти!",
	},
	4: {
		Ambulance: "{childName}, я готую вечерю для всіх! Скоро поліцейська машинка приїде додому!",
		Fire:      "Ой, {childName}, мені потрібні інструменти з роботи. Я швидко з'їжджу та повернусь!",
	},
	5: {
		Fire: "Ой, {childName}, я наїхала на гостру гілку і зламала колесо! Тепер я застрягла тут у лісі!",
	},
	6: {
		Police:    "{childName}, ти не бачив пожежну машинку? Ми її скрізь шукаємо, але не можемо знайти!",
		Ambulance: "{childName}, допоможи нам знайти пожежну машинку! Вона десь пропала!",
	},
	7: {
		Police:     "{childName}, я покликала своїх друзів - гвинтокрилів та літаки! Вони допоможуть знайти пожежну машинку!",
		Helicopter: "Я прилетів допомогти, {childName}! Зараз будемо шукати пожежну машинку з неба!",
	},
	8: {
		Helicopter: "{childName}, я летю над лісом і шукаю пожежну машинку! Світлю своїм прожектором!",
	},
	9: {
		Fire:       "Ура, {childName}! Гвинтокрил мене знайшов! Я так рада!",
		Helicopter: "{childName}, я знайшов пожежну машинку в лісі! Вона увімкнула свої маячки!",
	},
	10: {
		Fire:       "{childName}, я поїхала за інструментами і так швидко їхала, що зламала колесо. Тепер мені потрібна допомога!",
		Helicopter: "Не хвилюйся, {childName}! Зараз повідомлю поліцейську машинку і вони допоможуть!",
	},
	11: {
		Police: "{childName}, ми їдемо рятувати пожежну машинку! Я знайшла евакуатора з запасним колесом!",
		Tow:    "Привіт, {childName}! Я евакуатор, я можу відремонтувати колесо! Зараз поїдемо в ліс!",
	},
	12: {
		Police: "{childName}, дивись! Ми знайшли пожежну машинку! Зараз евакуатор відремонтує колесо!",
		Fire:   "Як я рада вас бачити, {childName}! Дякую, що прийшли на допомогу!",
		Tow:    "{childName}, зараз швидко відремонтую колесо, і пожежна машинка зможе їхати!",
	},
	13: {
		Police:     "{childName}, як добре, що ми всі разом! Справжні друзі завжди допомагають один одному!",
		Fire:       "Дякую всім за допомогу, {childName}! Я дуже рада, що у мене такі чудові сестрички!",
		Ambulance:  "{childName}, я приготувала вечерю для всіх! Ходіть до столу, друзі!",
		Helicopter: "Я радий, що зміг допомогти, {childName}! Тепер пожежна машинка в безпеці!",
	},
	14: {
		Police:    "{childName}, запам'ятай: завжди кажи близьким, куди ти йдеш! Так вони завжди зможуть тебе знайти!",
		Fire:      "Я навчилася важливого уроку, {childName}! Тепер я завжди буду казати сестричкам, куди їду!",
		Ambulance: "{childName}, справжня родина та друзі - це ті, хто завжди поруч і завжди готовий допомогти!",
	},
}
