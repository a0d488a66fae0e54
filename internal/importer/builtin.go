package importer

import "github.com/stemsi/schedule-bot/internal/model"

// Builtin returns the bundled timetable for both week parities.
func Builtin() ([]model.LessonSeed, error) {
	return Seeds(builtinRows)
}

var builtinRows = []Row{
	// Even week
	{Day: "Понедельник", Time: "8:00-9:35", Subject: "Основы российской государственности", Type: "пр", Teacher: "ст. пр. Нестеров Д.В.", Classroom: "2219", Week: "even"},
	{Day: "Понедельник", Time: "9:45-11:20", Subject: "Математический анализ", Type: "л", Teacher: "доц. Жалнина А.А.", Classroom: "2115", Week: "even"},
	{Day: "Понедельник", Time: "11:45-13:20", Subject: "Иностранный язык", Type: "пр", Teacher: "доц. Сергейчик Т.С.", Classroom: "5203", Week: "even", Subgroup: "1"},
	{Day: "Понедельник", Time: "11:45-13:20", Subject: "Архитектура вычислительных систем", Type: "лаб", Teacher: "асс. Лось М.А.", Classroom: "2131а", Week: "even", Subgroup: "2"},
	{Day: "Понедельник", Time: "13:30-15:05", Subject: "Циклические виды спорта (по выбору)", Type: "пр", Teacher: "ст. пр. Тюкалова С.А.", Classroom: "лыжная база", Week: "even"},
	{Day: "Вторник", Time: "9:45-11:20", Subject: "Языки программирования", Type: "лаб", Teacher: "асс. Дунанов И.О.", Classroom: "21306", Week: "even", Subgroup: "1"},
	{Day: "Вторник", Time: "11:45-13:20", Subject: "История России", Type: "пр", Teacher: "асс. Сирюкин И.В.", Classroom: "5221", Week: "even"},
	{Day: "Вторник", Time: "13:30-15:05", Subject: "Основы российской государственности", Type: "л", Teacher: "доц. Пьянов А.Е.", Classroom: "4бл", Week: "even"},
	{Day: "Вторник", Time: "15:30-17:05", Subject: "Информатика", Type: "л", Teacher: "зав. каф. Степанов Ю.А.", Classroom: "2226", Week: "even"},
	{Day: "Среда", Time: "9:45-11:20", Subject: "Математический анализ", Type: "пр", Teacher: "асс. Ануфриев Д.А.", Classroom: "5121", Week: "even"},
	{Day: "Среда", Time: "11:45-13:20", Subject: "Циклические виды спорта (по выбору)", Type: "пр", Teacher: "ст. пр. Тюкалова С.А.", Classroom: "лыжная база", Week: "even"},
	{Day: "Среда", Time: "13:30-15:05", Subject: "История России", Type: "л", Teacher: "ст. пр. Ганенок В.Ю.", Classroom: "2бл", Week: "even"},
	{Day: "Среда", Time: "15:30-17:05", Subject: "Алгебра и геометрия", Type: "пр", Teacher: "проф. Медведев А.В.", Classroom: "5106", Week: "even"},
	{Day: "Четверг", Time: "9:45-11:20", Subject: "Информатика", Type: "лаб", Teacher: "асс. Лаврова В.И.", Classroom: "21306", Week: "even"},
	{Day: "Четверг", Time: "11:45-13:20", Subject: "Языки программирования", Type: "л", Teacher: "доц. Бондарева Л.В.", Classroom: "2226", Week: "even"},
	{Day: "Четверг", Time: "13:30-15:05", Subject: "Иностранный язык", Type: "пр", Teacher: "доц. Сергейчик Т.С.", Classroom: "5109", Week: "even", Subgroup: "1"},
	{Day: "Четверг", Time: "13:30-15:05", Subject: "Информатика", Type: "лаб", Teacher: "асс. Лаврова В.И.", Classroom: "21306", Week: "even", Subgroup: "2"},
	{Day: "Четверг", Time: "15:30-17:05", Subject: "Иностранный язык", Type: "пр", Teacher: "доц. Сергейчик Т.С.", Classroom: "5109", Week: "even", Subgroup: "2"},
	{Day: "Четверг", Time: "17:15-18:50", Subject: "Языки программирования", Type: "лаб", Teacher: "асс. Дунанов И.О.", Classroom: "2130б", Week: "even", Subgroup: "2"},
	{Day: "Пятница", Time: "11:45-13:20", Subject: "Алгебра и геометрия", Type: "л", Teacher: "проф. Медведев А.В.", Classroom: "2114", Week: "even"},
	{Day: "Пятница", Time: "13:30-15:05", Subject: "Архитектура вычислительных систем", Type: "л", Teacher: "доц. Чеботарев А.Л.", Classroom: "3304", Week: "even"},
	{Day: "Пятница", Time: "15:30-17:05", Subject: "Введение в профессиональную деятельность", Type: "лаб", Teacher: "асс. Пасютин А.С.", Classroom: "2131в", Week: "even", Subgroup: "1"},
	{Day: "Пятница", Time: "17:15-18:50", Subject: "Введение в профессиональную деятельность", Type: "лаб", Teacher: "асс. Пасютин А.С.", Classroom: "2131в", Week: "even", Subgroup: "1"},

	// Odd week
	{Day: "Понедельник", Time: "8:00-9:35", Subject: "Основы российской государственности", Type: "пр", Teacher: "ст. пр. Нестеров Д.В.", Classroom: "2219", Week: "odd"},
	{Day: "Понедельник", Time: "9:45-11:20", Subject: "Математический анализ", Type: "л", Teacher: "доц. Жалнина А.А.", Classroom: "2115", Week: "odd"},
	{Day: "Понедельник", Time: "11:45-13:20", Subject: "Архитектура вычислительных систем", Type: "лаб", Teacher: "асс. Лось М.А.", Classroom: "2131в", Week: "odd"},
	{Day: "Понедельник", Time: "11:45-13:20", Subject: "Иностранный язык", Type: "пр", Teacher: "доц. Сергейчик Т.С.", Classroom: "5203", Week: "odd"},
	{Day: "Понедельник", Time: "13:30-15:05", Subject: "Циклические виды спорта (по выбору)", Type: "пр", Teacher: "ст. пр. Тюкалова С.А.", Classroom: "лыжная база", Week: "odd"},
	{Day: "Вторник", Time: "9:45-11:20", Subject: "Языки программирования", Type: "лаб", Teacher: "асс. Дунанов И.О.", Classroom: "21306", Week: "odd", Subgroup: "1"},
	{Day: "Вторник", Time: "11:45-13:20", Subject: "История России", Type: "пр", Teacher: "асс. Сирюкин И.В.", Classroom: "5221", Week: "odd"},
	{Day: "Вторник", Time: "13:30-15:05", Subject: "Введение в профессиональную деятельность", Type: "л", Teacher: "доц. Бондарева Л.В.", Classroom: "2219", Week: "odd"},
	{Day: "Вторник", Time: "15:30-17:05", Subject: "Информатика", Type: "л", Teacher: "зав. каф. Степанов Ю.А.", Classroom: "2226", Week: "odd"},
	{Day: "Среда", Time: "9:45-11:20", Subject: "Математический анализ", Type: "пр", Teacher: "асс. Ануфриев Д.А.", Classroom: "5121", Week: "odd"},
	{Day: "Среда", Time: "11:45-13:20", Subject: "Циклические виды спорта (по выбору)", Type: "пр", Teacher: "ст. пр. Тюкалова С.А.", Classroom: "лыжная база", Week: "odd"},
	{Day: "Среда", Time: "13:30-15:05", Subject: "История России", Type: "л", Teacher: "ст. пр. Ганенок В.Ю.", Classroom: "2бл", Week: "odd"},
	{Day: "Среда", Time: "15:30-17:05", Subject: "Алгебра и геометрия", Type: "пр", Teacher: "проф. Медведев А.В.", Classroom: "5106", Week: "odd"},
	{Day: "Четверг", Time: "9:45-11:20", Subject: "Информатика", Type: "лаб", Teacher: "асс. Лаврова В.И.", Classroom: "21306", Week: "odd"},
	{Day: "Четверг", Time: "11:45-13:20", Subject: "Языки программирования", Type: "л", Teacher: "доц. Бондарева Л.В.", Classroom: "2226", Week: "odd"},
	{Day: "Четверг", Time: "13:30-15:05", Subject: "Иностранный язык", Type: "пр", Teacher: "доц. Сергейчик Т.С.", Classroom: "5109", Week: "odd", Subgroup: "1"},
	{Day: "Четверг", Time: "13:30-15:05", Subject: "Информатика", Type: "лаб", Teacher: "асс. Лаврова В.И.", Classroom: "21306", Week: "odd", Subgroup: "2"},
	{Day: "Четверг", Time: "15:30-17:05", Subject: "Иностранный язык", Type: "пр", Teacher: "доц. Сергейчик Т.С.", Classroom: "5109", Week: "odd", Subgroup: "2"},
	{Day: "Четверг", Time: "17:15-18:50", Subject: "Языки программирования", Type: "лаб", Teacher: "асс. Дунанов И.О.", Classroom: "2130б", Week: "odd", Subgroup: "2"},
	{Day: "Пятница", Time: "11:45-13:20", Subject: "Алгебра и геометрия", Type: "л", Teacher: "проф. Медведев А.В.", Classroom: "2114", Week: "odd"},
	{Day: "Пятница", Time: "13:30-15:05", Subject: "Архитектура вычислительных систем", Type: "л", Teacher: "доц. Чеботарев А.Л.", Classroom: "3304", Week: "odd"},
	{Day: "Пятница", Time: "15:30-17:05", Subject: "Введение в профессиональную деятельность", Type: "лаб", Teacher: "асс. Пасютин А.С.", Classroom: "2131в", Week: "odd", Subgroup: "2"},
	{Day: "Пятница", Time: "17:15-18:50", Subject: "Введение в профессиональную деятельность", Type: "лаб", Teacher: "асс. Пасютин А.С.", Classroom: "2131в", Week: "odd", Subgroup: "2"},
}
