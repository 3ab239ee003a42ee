package content

// DefaultDocument returns the content document a tenant page starts with
// before anyone edits it. The shape mirrors what the page renderer and the
// visual editor expect.
func DefaultDocument() []byte {
	return []byte(`{
  "hero": {
    "title": "ようこそ",
    "subtitle": "当店自慢の味をお楽しみください",
    "imageUrl": "",
    "videoUrl": ""
  },
  "about": {
    "heading": "こだわり",
    "body": "素材と製法にこだわった一品をご用意しています。"
  },
  "menu": {
    "heading": "メニュー",
    "items": []
  },
  "info": {
    "address": "",
    "phone": "",
    "hours": "",
    "holidays": "",
    "mapQuery": ""
  },
  "news": {
    "enabled": true,
    "heading": "お知らせ"
  },
  "gallery": {
    "images": []
  }
}`)
}
