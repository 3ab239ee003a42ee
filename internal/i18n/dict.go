package i18n

// dictionary maps string keys to per-language values. Japanese is the source
// language; other languages may be partial.
var dictionary = map[string]map[Lang]string{
	"nav.about": {
		LangJA: "こだわり",
		LangEN: "About",
		LangKO: "소개",
		LangZH: "介绍",
	},
	"nav.menu": {
		LangJA: "お品書き",
		LangEN: "Menu",
		LangKO: "메뉴",
		LangZH: "菜单",
	},
	"nav.seats": {
		LangJA: "お席",
		LangEN: "Seats",
		LangKO: "좌석",
		LangZH: "座位",
	},
	"nav.gallery": {
		LangJA: "ギャラリー",
		LangEN: "Gallery",
		LangKO: "갤러리",
		LangZH: "画廊",
	},
	"nav.news": {
		LangJA: "お知らせ",
		LangEN: "News",
		LangKO: "소식",
		LangZH: "新闻",
	},
	"nav.access": {
		LangJA: "アクセス",
		LangEN: "Access",
		LangKO: "오시는 길",
		LangZH: "交通",
	},
	"nav.reserve": {
		LangJA: "ご予約",
		LangEN: "Reserve",
		LangKO: "예약",
		LangZH: "预订",
	},
	"section.courses": {
		LangJA: "コース料理",
		LangEN: "Courses",
	},
	"section.drinks": {
		LangJA: "お飲み物",
		LangEN: "Drinks",
	},
	"section.motsunabe": {
		LangJA: "もつ鍋",
		LangEN: "Motsunabe",
	},
	"section.dining_style": {
		LangJA: "お食事スタイル",
		LangEN: "Dining Style",
	},
	"section.info": {
		LangJA: "店舗情報",
		LangEN: "Restaurant Info",
		LangKO: "매장 정보",
		LangZH: "店铺信息",
	},
	"info.hours": {
		LangJA: "営業時間",
		LangEN: "Opening Hours",
		LangKO: "영업시간",
		LangZH: "营业时间",
	},
	"info.closed": {
		LangJA: "定休日",
		LangEN: "Closed",
	},
	"info.address": {
		LangJA: "住所",
		LangEN: "Address",
		LangKO: "주소",
		LangZH: "地址",
	},
	"info.phone": {
		LangJA: "電話番号",
		LangEN: "Phone",
	},
	"news.read_more": {
		LangJA: "続きを読む",
		LangEN: "Read more",
		LangKO: "더 보기",
		LangZH: "阅读更多",
	},
	"news.empty": {
		LangJA: "お知らせはまだありません",
		LangEN: "No news yet",
	},
	"footer.copyright": {
		LangJA: "無断転載を禁じます",
		LangEN: "All rights reserved",
	},
}
