package mulenpay

import (
	"fmt"
	"sort"
	"strings"
)

// Fiscal receipt code tables per the MulenPay API. Table membership is the
// sole validity criterion for the matching item fields.

var VATCodes = map[int]string{
	0: "Без НДС",
	1: "НДС по ставке 0%",
	2: "НДС чека по ставке 10%",
	3: "НДС чека по ставке 18%",
	4: "НДС чека по расчетной ставке 10/110",
	5: "НДС чека по расчетной ставке 18/118",
	6: "НДС чека по ставке 20%",
	7: "НДС чека по расчетной ставке 20/120",
}

// PaymentSubjects has no key 18, the code is reserved by the fiscal regulation.
var PaymentSubjects = map[int]string{
	1:  "Товар",
	2:  "Подакцизный товар",
	3:  "Работа",
	4:  "Услуга",
	5:  "Ставка азартной игры",
	6:  "Выигрыш азартной игры",
	7:  "Лотерейный билет",
	8:  "Выигрыш лотереи",
	9:  "Предоставление РИД",
	10: "Платеж",
	11: "Агентское вознаграждение",
	12: "Выплата",
	13: "Иной предмет расчета",
	14: "Имущественное право",
	15: "Внереализационный доход",
	16: "Иные платежи и взносы",
	17: "Торговый сбор",
	19: "Залог",
	20: "Расход",
	21: "Взносы на обязательное пенсионное страхование ИП",
	22: "Взносы на обязательное пенсионное страхование",
	23: "Взносы на обязательное медицинское страхование ИП",
	24: "Взносы на обязательное медицинское страхование",
	25: "Взносы на обязательное социальное страхование",
	26: "Платеж казино",
}

var PaymentModes = map[int]string{
	1: "Полная предоплата",
	2: "Частичная предоплата",
	3: "Аванс",
	4: "Полный расчет",
	5: "Частичный расчет и кредит",
	6: "Кредит",
	7: "Выплата по кредиту",
}

var MeasurementUnits = map[int]string{
	0:   "Штука или единица (шт. или ед.)",
	10:  "Грамм (г)",
	11:  "Килограмм (кг)",
	12:  "Тонна (т)",
	20:  "Сантиметр (см)",
	21:  "Дециметр (дм)",
	22:  "Метр (м)",
	30:  "Квадратный сантиметр (кв. см)",
	31:  "Квадратный дециметр (кв. дм)",
	32:  "Квадратный метр (кв. м)",
	40:  "Миллилитр (мл)",
	41:  "Литр (л)",
	42:  "Кубический метр (куб. м)",
	50:  "Киловатт час (кВт · ч)",
	51:  "Гигакалория (Гкал)",
	70:  "Сутки (сутки)",
	71:  "Час (час)",
	72:  "Минута (мин)",
	73:  "Секунда (с)",
	80:  "Килобайт (Кбайт)",
	81:  "Мегабайт (Мбайт)",
	82:  "Гигабайт (Гбайт)",
	83:  "Терабайт (Тбайт)",
	255: "Применяется при использовании иных единиц измерения, не поименованных в п. п. 1 - 23",
}

// formatCodes renders a code table as "key: label" lines in ascending key
// order, so enum violation messages stay deterministic and self-documenting.
func formatCodes(codes map[int]string) string {
	keys := make([]int, 0, len(codes))
	for k := range codes {
		keys = append(keys, k)
	}

	sort.Ints(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%d: %s", k, codes[k]))
	}

	return strings.Join(lines, "\n")
}
