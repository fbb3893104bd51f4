package languages

// defaultEntries 插件支持的语言，名称为发送给 Cohere 的称呼
var defaultEntries = []Entry{
	{Code: "auto", Name: "auto"},
	{Code: "zh-Hans", Name: "Simplified Chinese"},
	{Code: "zh-Hant", Name: "Traditional Chinese"},
	{Code: "yue", Name: "Cantonese"},
	{Code: "wyw", Name: "Classical Chinese"},
	{Code: "en", Name: "English"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "es", Name: "Spanish"},
	{Code: "it", Name: "Italian"},
	{Code: "ru", Name: "Russian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "nl", Name: "Dutch"},
	{Code: "pl", Name: "Polish"},
	{Code: "ar", Name: "Arabic"},
	{Code: "af", Name: "Afrikaans"},
	{Code: "am", Name: "Amharic"},
	{Code: "az", Name: "Azerbaijani"},
	{Code: "be", Name: "Belarusian"},
	{Code: "bg", Name: "Bulgarian"},
	{Code: "bn", Name: "Bengali"},
	{Code: "bs", Name: "Bosnian"},
	{Code: "ca", Name: "Catalan"},
	{Code: "ceb", Name: "Cebuano"},
	{Code: "co", Name: "Corsican"},
	{Code: "cs", Name: "Czech"},
	{Code: "cy", Name: "Welsh"},
	{Code: "da", Name: "Danish"},
	{Code: "el", Name: "Greek"},
	{Code: "eo", Name: "Esperanto"},
	{Code: "et", Name: "Estonian"},
	{Code: "eu", Name: "Basque"},
	{Code: "fa", Name: "Persian"},
	{Code: "fi", Name: "Finnish"},
	{Code: "fj", Name: "Fijian"},
	{Code: "fy", Name: "Frisian"},
	{Code: "ga", Name: "Irish"},
	{Code: "gd", Name: "Scottish Gaelic"},
	{Code: "gl", Name: "Galician"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "ha", Name: "Hausa"},
	{Code: "haw", Name: "Hawaiian"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
	{Code: "hmn", Name: "Hmong"},
	{Code: "hr", Name: "Croatian"},
	{Code: "ht", Name: "Haitian Creole"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "hy", Name: "Armenian"},
	{Code: "id", Name: "Indonesian"},
	{Code: "ig", Name: "Igbo"},
	{Code: "is", Name: "Icelandic"},
	{Code: "jw", Name: "Javanese"},
	{Code: "ka", Name: "Georgian"},
	{Code: "kk", Name: "Kazakh"},
	{Code: "km", Name: "Khmer"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ku", Name: "Kurdish"},
	{Code: "ky", Name: "Kyrgyz"},
	{Code: "la", Name: "Latin"},
	{Code: "lb", Name: "Luxembourgish"},
	{Code: "lo", Name: "Lao"},
	{Code: "lt", Name: "Lithuanian"},
	{Code: "lv", Name: "Latvian"},
	{Code: "mg", Name: "Malagasy"},
	{Code: "mi", Name: "Maori"},
	{Code: "mk", Name: "Macedonian"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "mn", Name: "Mongolian"},
	{Code: "mr", Name: "Marathi"},
	{Code: "ms", Name: "Malay"},
	{Code: "mt", Name: "Maltese"},
	{Code: "my", Name: "Burmese"},
	{Code: "ne", Name: "Nepali"},
	{Code: "no", Name: "Norwegian"},
	{Code: "ny", Name: "Chichewa"},
	{Code: "or", Name: "Odia"},
	{Code: "pa", Name: "Punjabi"},
	{Code: "ps", Name: "Pashto"},
	{Code: "ro", Name: "Romanian"},
	{Code: "rw", Name: "Kinyarwanda"},
	{Code: "si", Name: "Sinhala"},
	{Code: "sk", Name: "Slovak"},
	{Code: "sl", Name: "Slovenian"},
	{Code: "sm", Name: "Samoan"},
	{Code: "sn", Name: "Shona"},
	{Code: "so", Name: "Somali"},
	{Code: "sq", Name: "Albanian"},
	{Code: "sr", Name: "Serbian"},
	{Code: "st", Name: "Sesotho"},
	{Code: "su", Name: "Sundanese"},
	{Code: "sv", Name: "Swedish"},
	{Code: "sw", Name: "Swahili"},
	{Code: "ta", Name: "Tamil"},
	{Code: "te", Name: "Telugu"},
	{Code: "tg", Name: "Tajik"},
	{Code: "th", Name: "Thai"},
	{Code: "tk", Name: "Turkmen"},
	{Code: "tl", Name: "Filipino"},
	{Code: "tr", Name: "Turkish"},
	{Code: "tt", Name: "Tatar"},
	{Code: "ug", Name: "Uyghur"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "ur", Name: "Urdu"},
	{Code: "uz", Name: "Uzbek"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "xh", Name: "Xhosa"},
	{Code: "yi", Name: "Yiddish"},
	{Code: "yo", Name: "Yoruba"},
	{Code: "zu", Name: "Zulu"},
}
