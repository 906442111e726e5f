package fixedplan

import "bibleplan/internal/corpus"

var fixedPlans = []Plan{
	{
		ID:          "new-testament-fixed-year",
		Name:        "Новый Завет за год (фиксированный план)",
		Description: "Фиксированный план чтения Нового Завета за год с ежедневными чтениями.",
		Testament:   corpus.New,
		Readings:    newTestamentFixedYear,
	},
}

// newTestamentFixedYear is one label per day; several labels use U+2011 in
// verse ranges and are kept as authored.
var newTestamentFixedYear = []string{
	"Мф.1",
	"Мф.2",
	"Мф.3",
	"Мф.4",
	"Мф.5:1–26",
	"Мф.5:27–48",
	"Мф.6",
	"Мф.7",
	"Мф.8",
	"Мф.9:1–17",
	"Мф.9:18–38",
	"Мф.10:1–23",
	"Мф.10:24–42",
	"Мф.11",
	"Мф.12:1–21",
	"Мф.12:22–50",
	"Мф.13:1–32",
	"Мф.13:33–58",
	"Мф.14:1–21",
	"Мф.14:22–36",
	"Мф.15:1–20",
	"Мф.15:21–39",
	"Мф.16",
	"Мф.17",
	"Мф.18:1–20",
	"Мф.18:21–35",
	"Мф.19:1–15",
	"Мф.19:16–30",
	"Мф.20:1–16",
	"Мф.20:17–34",
	"Мф.21:1–22",
	"Мф.21:23‑46",
	"Мф.22:1‑22",
	"Мф.22:23‑46",
	"Мф.23:1‑22",
	"Мф.23:23‑39",
	"Мф.24:1‑22",
	"Мф.24:23‑51",
	"Мф.25:1‑30",
	"Мф.25:31‑46",
	"Мф.26:1‑19",
	"Мф.26:20‑54",
	"Мф.26:55‑75",
	"Мф.27:1‑31",
	"Мф.27:32‑66",
	"Мф.28",
	"Мк.1:1‑22",
	"Мк.1:23‑45",
	"Мк.2",
	"Мк.3:1‑21",
	"Мк.3:22‑35",
	"Мк.4:1‑20",
	"Мк.4:21‑41",
	"Мк.5:1‑20",
	"Мк.5:21‑43",
	"Мк.6:1‑32",
	"Мк.6:33‑56",
	"Мк.7:1‑13",
	"Мк.7:14‑37",
	"Мк.8:1‑21",
	"Мк.8:22‑38",
	"Мк.9:1‑29",
	"Мк.9:30‑50",
	"Мк.10:1‑31",
	"Мк.10:32‑52",
	"Мк.11:1‑19",
	"Мк.11:20‑33",
	"Мк.12:1‑27",
	"Мк.12:28‑44",
	"Мк.13:1‑13",
	"Мк.13:14‑37",
	"Мк.14:1‑25",
	"Мк.14:26‑50",
	"Мк.14:51‑72",
	"Мк.15:1‑26",
	"Мк.15:27‑47",
	"Мк.16",
	"Лк.1:1‑23",
	"Лк.1:24‑56",
	"Лк.1:57‑80",
	"Лк.2:1‑24",
	"Лк.2:25‑52",
	"Лк.3",
	"Лк.4:1‑32",
	"Лк.4:33‑44",
	"Лк.5:1‑16",
	"Лк.5:17‑39",
	"Лк.6:1‑26",
	"Лк.6:27‑49",
	"Лк.7:1‑30",
	"Лк.7:31‑50",
	"Лк.8:1‑21",
	"Лк.8:22‑56",
	"Лк.9:1‑36",
	"Лк.9:37‑62",
	"Лк.10:1‑24",
	"Лк.10:25‑42",
	"Лк.11:1‑28",
	"Лк.11:29‑54",
	"Лк.12:1‑34",
	"Лк.12:35‑59",
	"Лк.13:1‑21",
	"Лк.13:22‑35",
	"Лк.14:1‑24",
	"Лк.14:25‑35",
	"Лк.15:1‑10",
	"Лк.15:11‑32",
	"Лк.16:1‑18",
	"Лк.16:19‑31",
	"Лк.17:1‑19",
	"Лк.17:20‑37",
	"Лк.18:1‑17",
	"Лк.18:18‑43",
	"Лк.19:1‑28",
	"Лк.19:29‑48",
	"Лк.20:1‑26",
	"Лк.20:27‑47",
	"Лк.21:1‑19",
	"Лк.21:20‑38",
	"Лк.22:1‑30",
	"Лк.22:31‑53",
	"Лк.22:54‑71",
	"Лк.23:1‑26",
	"Лк.23:27‑38",
	"Лк.23:39–56",
	"Лк.24:1–35",
	"Лк.24:36–53",
	"Ин.1:1–28",
	"Ин.1:29–51",
	"Ин.2",
	"Ин.3:1–21",
	"Ин.3:22–36",
	"Ин.4:1–30",
	"Ин.4:31–54",
	"Ин.5:1–24",
	"Ин.5:25–47",
	"Ин.6:1–21",
	"Ин.6:22–44",
	"Ин.6:45–71",
	"Ин.7:1–31",
	"Ин.7:32–53",
	"Ин.8:1–20",
	"Ин.8:21–36",
	"Ин.8:37–59",
	"Ин.9:1–23",
	"Ин.9:24–41",
	"Ин.10:1–21",
	"Ин.10:22–42",
	"Ин.11:1–17",
	"Ин.11:18–46",
	"Ин.11:47–57",
	"Ин.12:1–19",
	"Ин.12:20–50",
	"Ин.13:1–17",
	"Ин.13:18–38",
	"Ин.14",
	"Ин.15",
	"Ин.16:1–15",
	"Ин.16:16–33",
	"Ин.17",
	"Ин.18:1–23",
	"Ин.18:24–40",
	"Ин.19:1–22",
	"Ин.19:23–42",
	"Ин.20",
	"Ин.21",
	"Деян.1",
	"Деян.2:1–13",
	"Деян.2:14–47",
	"Деян.3",
	"Деян.4:1–22",
	"Деян.4:23–37",
	"Деян.5:1–16",
	"Деян.5:17–42",
	"Деян.6",
	"Деян.7:1–19",
	"Деян.7:20–43",
	"Деян.7:44–60",
	"Деян.8:1–25",
	"Деян.8:26–40",
	"Деян.9:1–22",
	"Деян.9:23–43",
	"Деян.10:1–23",
	"Деян.10:24–48",
	"Деян.11",
	"Деян.12",
	"Деян.13:1–23",
	"Деян.13:24–52",
	"Деян.14",
	"Деян.15:1–21",
	"Деян.15:22–41",
	"Деян.16:1–15",
	"Деян.16:16–40",
	"Деян.17:1–15",
	"Деян.17:16–34",
	"Деян.18",
	"Деян.19:1–20",
	"Деян.19:21–41",
	"Деян.20:1–16",
	"Деян.20:17–38",
	"Деян.21:1–14",
	"Деян.21:15–40",
	"Деян.22",
	"Деян.23:1–11",
	"Деян.23:12–35",
	"Деян.24",
	"Деян.25",
	"Деян.26",
	"Деян.27:1–25",
	"Деян.27:26–44",
	"Деян.28:1–15",
	"Деян.28:16–31",
	"Рим.1",
	"Рим.2",
	"Рим.3",
	"Рим.4",
	"Рим.5",
	"Рим.6",
	"Рим.7",
	"Рим.8:1–18",
	"Рим.8:19–39",
	"Рим.9",
	"Рим.10",
	"Рим.11:1–21",
	"Рим.11:22–36",
	"Рим.12",
	"Рим.13",
	"Рим.14",
	"Рим.15:1–21",
	"Рим.15:22–33",
	"Рим.16",
	"1Кор.1",
	"1Кор.2",
	"1Кор.3",
	"1Кор.4",
	"1Кор.5",
	"1Кор.6",
	"1Кор.7:1–24",
	"1Кор.7:25–40",
	"1Кор.8",
	"1Кор.9",
	"1Кор.10:1–13",
	"1Кор.10:14–33",
	"1Кор.11:1–15",
	"1Кор.11:16–34",
	"1Кор.12",
	"1Кор.13",
	"1Кор.14:1–20",
	"1Кор.14:21–40",
	"1Кор.15:1–32",
	"1Кор.15:33–58",
	"1Кор.16",
	"2Кор.1",
	"2Кор.2",
	"2Кор.3",
	"2Кор.4",
	"2Кор.5",
	"2Кор.6",
	"2Кор.7",
	"2Кор.8",
	"2Кор.9",
	"2Кор.10",
	"2Кор.11:1–15",
	"2Кор.11:16–33",
	"2Кор.12",
	"2Кор.13",
	"Гал.1",
	"Гал.2",
	"Гал.3",
	"Гал.4",
	"Гал.5",
	"Гал.6",
	"Еф.1",
	"Еф.2",
	"Еф.3",
	"Еф.4",
	"Еф.5",
	"Еф.6",
	"Флп.1",
	"Флп.2",
	"Флп.3",
	"Флп.4",
	"Кол.1",
	"Кол.2",
	"Кол.3",
	"Кол.4",
	"1Фес.1",
	"1Фес.2",
	"1Фес.3",
	"1Фес.4",
	"1Фес.5",
	"2Фес.1",
	"2Фес.2",
	"2Фес.3",
	"1Тим.1",
	"1Тим.2",
	"1Тим.3",
	"1Тим.4",
	"1Тим.5",
	"1Тим.6",
	"2Тим.1",
	"2Тим.2",
	"2Тим.3",
	"2Тим.4",
	"Тит.1",
	"Тит.2",
	"Тит.3",
	"Флм.",
	"Евр.1",
	"Евр.2",
	"Евр.3",
	"Евр.4",
	"Евр.5",
	"Евр.6",
	"Евр.7",
	"Евр.8",
	"Евр.9",
	"Евр.10:1–23",
	"Евр.10:24–39",
	"Евр.11:1–19",
	"Евр.11:20–40",
	"Евр.12",
	"Евр.13",
	"Иак.1",
	"Иак.2",
	"Иак.3",
	"Иак.4",
	"Иак.5",
	"1Пет.1",
	"1Пет.2",
	"1Пет.3",
	"1Пет.4",
	"1Пет.5",
	"2Пет.1",
	"2Пет.2",
	"2Пет.3",
	"1Ин.1",
	"1Ин.2",
	"1Ин.3",
	"1Ин.4",
	"1Ин.5",
	"2Ин.",
	"3Ин.",
	"Иуд.",
	"Откр.1",
	"Откр.2",
	"Откр.3",
	"Откр.4",
	"Откр.5",
	"Откр.6",
	"Откр.7",
	"Откр.8",
	"Откр.9",
	"Откр.10",
	"Откр.11",
	"Откр.12",
	"Откр.13",
	"Откр.14",
	"Откр.15",
	"Откр.16",
	"Откр.17",
	"Откр.18",
	"Откр.19",
	"Откр.20",
	"Откр.21",
	"Откр.22",
}
